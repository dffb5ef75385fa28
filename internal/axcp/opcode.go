// Package axcp implements the wire-level command framing used between the
// software controller and the hardware controller: a one-byte opcode
// followed by a payload that the opcode alone determines to be either of a
// fixed size or a sequence of length-prefixed chunks.
package axcp

// Opcode identifies a single command or reply on the wire.
type Opcode uint8

// Opcode values, grouped the way the original command table groups them.
const (
	NOP  Opcode = 0
	NOP2 Opcode = 248

	SendCustomDataAction        Opcode = 5
	CustomDataAvailableRequest  Opcode = 6
	CustomDataAvailableReply    Opcode = 7
	ReadCustomDataRequest       Opcode = 8
	ReadCustomDataReply         Opcode = 9

	AnalogSensorRequest      Opcode = 10
	AnalogSensorReply        Opcode = 11
	AnalogSensorSubscription Opcode = 12
	AnalogSensorUpdate       Opcode = 13
	AnalogPullupAction       Opcode = 14

	DigitalSensorRequest      Opcode = 20
	DigitalSensorReply        Opcode = 21
	DigitalSensorSubscription Opcode = 22
	DigitalSensorUpdate       Opcode = 23
	DigitalPullupAction       Opcode = 24
	DigitalOutputModeAction   Opcode = 25
	DigitalOutputLevelAction  Opcode = 26

	MotorPowerAction                     Opcode = 30
	MotorVelocityAction                  Opcode = 31
	MotorPowerAbsolutePositionAction     Opcode = 32
	MotorVelocityAbsolutePositionAction  Opcode = 33
	MotorPowerRelativePositionAction     Opcode = 34
	MotorVelocityRelativePositionAction  Opcode = 35
	MotorFreezeAction                    Opcode = 36
	MotorBrakeAction                     Opcode = 37
	MotorOffAction                       Opcode = 38

	MotorPositionRequest      Opcode = 40
	MotorPositionReply        Opcode = 41
	MotorPositionReachedAction Opcode = 42
	MotorPositionSubscription Opcode = 43
	MotorPositionUpdate       Opcode = 44
	MotorClearPositionAction  Opcode = 45
	MotorVelocityRequest      Opcode = 46
	MotorVelocityReply        Opcode = 47
	MotorVelocitySubscription Opcode = 48
	MotorVelocityUpdate       Opcode = 49

	ServoOnOffAction Opcode = 50
	ServoDriveAction Opcode = 51

	ControllerBatteryChargeRequest        Opcode = 60
	ControllerBatteryChargeReply          Opcode = 61
	ControllerBatteryChargingStateRequest Opcode = 62
	ControllerBatteryChargingStateReply   Opcode = 63
	PhoneBatteryChargeRequest             Opcode = 64
	PhoneBatteryChargeReply               Opcode = 65
	PhoneBatteryChargingStateRequest      Opcode = 66
	PhoneBatteryChargingStateReply        Opcode = 67
	ControllerBatteryUpdate               Opcode = 68

	PhoneSensorRequest             Opcode = 70
	PhoneSensorReply               Opcode = 71
	PhoneSensorAvailabilityRequest Opcode = 72
	PhoneSensorAvailabilityReply   Opcode = 73

	PhoneCameraTakePictureAction  Opcode = 80
	PhoneCameraGetBlobCountRequest Opcode = 81
	PhoneCameraGetBlobCountReply   Opcode = 82
	PhoneCameraGetBlobRequest      Opcode = 83
	PhoneCameraGetBlobReply        Opcode = 84
	PhoneCameraSetChannelAction    Opcode = 85

	HWControllerOffAction  Opcode = 90
	HWControllerResetAction Opcode = 91
	SWControllerOffAction  Opcode = 92
	SWControllerResetAction Opcode = 93
	PhoneOffAction         Opcode = 94
	PhoneResetAction       Opcode = 95
	ErrorAction            Opcode = 96
	CustomAction           Opcode = 97

	DebugInformationUpdate Opcode = 100

	HWControllerTypeRequest     Opcode = 110
	HWControllerTypeReply       Opcode = 111
	SWControllerTypeRequest     Opcode = 112
	SWControllerTypeReply       Opcode = 113
	PhoneTypeRequest            Opcode = 114
	PhoneTypeReply              Opcode = 115
	HWControllerSetMemoryAction Opcode = 116

	EnvironmentScanSubscription         Opcode = 120
	EnvironmentScanHWControllerUpdate   Opcode = 121
	EnvironmentScanSWControllerUpdate   Opcode = 122
	EnvironmentScanPhoneUpdate          Opcode = 123
	ControllerAuthenticateRequest       Opcode = 124
	ControllerAuthenticateReply         Opcode = 125
	HWControllerGetMemoryRequest        Opcode = 126
	HWControllerGetMemoryReply          Opcode = 127

	ProgramCompileRequest        Opcode = 150
	ProgramCompileReply          Opcode = 151
	ProgramExecuteAction         Opcode = 152
	ProgramCompileExecuteRequest Opcode = 153
	ProgramCompileExecuteReply   Opcode = 154
	ProgramsFetchSubscription    Opcode = 155
	ProgramsFetchUpdate          Opcode = 156
	ProgramsFetchDoneUpdate      Opcode = 157

	ExecutionStartedAction  Opcode = 160
	ExecutionStopAction     Opcode = 161
	ExecutionRestartAction  Opcode = 162
	ExecutionStoppedAction  Opcode = 163
	ExecutionDoneAction     Opcode = 164
	ExecutionPrintoutAction Opcode = 165
	ExecutionDataAction     Opcode = 166

	DebuggingBreakAction           Opcode = 170
	DebuggingBreakedAction         Opcode = 171
	DebuggingContinueAction        Opcode = 172
	DebuggingAddBreakpointAction   Opcode = 173
	DebuggingRemoveBreakpointAction Opcode = 174
)

// ProgramNameLen is the fixed, space-padded width of a program name field.
const ProgramNameLen = 32

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "UNKNOWN_OPCODE"
}

var opcodeNames = map[Opcode]string{
	NOP:                                  "NOP",
	NOP2:                                 "NOP2",
	SendCustomDataAction:                 "SEND_CUSTOM_DATA_ACTION",
	CustomDataAvailableRequest:           "CUSTOM_DATA_AVAILABLE_REQUEST",
	CustomDataAvailableReply:             "CUSTOM_DATA_AVAILABLE_REPLY",
	ReadCustomDataRequest:                "READ_CUSTOM_DATA_REQUEST",
	ReadCustomDataReply:                  "READ_CUSTOM_DATA_REPLY",
	AnalogSensorRequest:                  "ANALOG_SENSOR_REQUEST",
	AnalogSensorReply:                    "ANALOG_SENSOR_REPLY",
	AnalogSensorSubscription:             "ANALOG_SENSOR_SUBSCRIPTION",
	AnalogSensorUpdate:                   "ANALOG_SENSOR_UPDATE",
	AnalogPullupAction:                   "ANALOG_PULLUP_ACTION",
	DigitalSensorRequest:                 "DIGITAL_SENSOR_REQUEST",
	DigitalSensorReply:                   "DIGITAL_SENSOR_REPLY",
	DigitalSensorSubscription:            "DIGITAL_SENSOR_SUBSCRIPTION",
	DigitalSensorUpdate:                  "DIGITAL_SENSOR_UPDATE",
	DigitalPullupAction:                  "DIGITAL_PULLUP_ACTION",
	DigitalOutputModeAction:              "DIGITAL_OUTPUT_MODE_ACTION",
	DigitalOutputLevelAction:             "DIGITAL_OUTPUT_LEVEL_ACTION",
	MotorPowerAction:                     "MOTOR_POWER_ACTION",
	MotorVelocityAction:                  "MOTOR_VELOCITY_ACTION",
	MotorPowerAbsolutePositionAction:     "MOTOR_POWER_ABSOLUTE_POSITION_ACTION",
	MotorVelocityAbsolutePositionAction:  "MOTOR_VELOCITY_ABSOLUTE_POSITION_ACTION",
	MotorPowerRelativePositionAction:     "MOTOR_POWER_RELATIVE_POSITION_ACTION",
	MotorVelocityRelativePositionAction:  "MOTOR_VELOCITY_RELATIVE_POSITION_ACTION",
	MotorFreezeAction:                    "MOTOR_FREEZE_ACTION",
	MotorBrakeAction:                     "MOTOR_BRAKE_ACTION",
	MotorOffAction:                       "MOTOR_OFF_ACTION",
	MotorPositionRequest:                 "MOTOR_POSITION_REQUEST",
	MotorPositionReply:                   "MOTOR_POSITION_REPLY",
	MotorPositionReachedAction:           "MOTOR_POSITION_REACHED_ACTION",
	MotorPositionSubscription:            "MOTOR_POSITION_SUBSCRIPTION",
	MotorPositionUpdate:                  "MOTOR_POSITION_UPDATE",
	MotorClearPositionAction:             "MOTOR_CLEAR_POSITION_ACTION",
	MotorVelocityRequest:                 "MOTOR_VELOCITY_REQUEST",
	MotorVelocityReply:                   "MOTOR_VELOCITY_REPLY",
	MotorVelocitySubscription:            "MOTOR_VELOCITY_SUBSCRIPTION",
	MotorVelocityUpdate:                  "MOTOR_VELOCITY_UPDATE",
	ServoOnOffAction:                     "SERVO_ONOFF_ACTION",
	ServoDriveAction:                     "SERVO_DRIVE_ACTION",
	ControllerBatteryChargeRequest:       "CONTROLLER_BATTERY_CHARGE_REQUEST",
	ControllerBatteryChargeReply:         "CONTROLLER_BATTERY_CHARGE_REPLY",
	ControllerBatteryChargingStateRequest: "CONTROLLER_BATTERY_CHARGING_STATE_REQUEST",
	ControllerBatteryChargingStateReply:  "CONTROLLER_BATTERY_CHARGING_STATE_REPLY",
	PhoneBatteryChargeRequest:            "PHONE_BATTERY_CHARGE_REQUEST",
	PhoneBatteryChargeReply:              "PHONE_BATTERY_CHARGE_REPLY",
	PhoneBatteryChargingStateRequest:     "PHONE_BATTERY_CHARGING_STATE_REQUEST",
	PhoneBatteryChargingStateReply:       "PHONE_BATTERY_CHARGING_STATE_REPLY",
	ControllerBatteryUpdate:              "CONTROLLER_BATTERY_UPDATE",
	PhoneSensorRequest:                   "PHONE_SENSOR_REQUEST",
	PhoneSensorReply:                     "PHONE_SENSOR_REPLY",
	PhoneSensorAvailabilityRequest:       "PHONE_SENSOR_AVAILABILITY_REQUEST",
	PhoneSensorAvailabilityReply:         "PHONE_SENSOR_AVAILABILITY_REPLY",
	PhoneCameraTakePictureAction:         "PHONE_CAMERA_TAKE_PICTURE_ACTION",
	PhoneCameraGetBlobCountRequest:       "PHONE_CAMERA_GET_BLOB_COUNT_REQUEST",
	PhoneCameraGetBlobCountReply:         "PHONE_CAMERA_GET_BLOB_COUNT_REPLY",
	PhoneCameraGetBlobRequest:            "PHONE_CAMERA_GET_BLOB_REQUEST",
	PhoneCameraGetBlobReply:              "PHONE_CAMERA_GET_BLOB_REPLY",
	PhoneCameraSetChannelAction:          "PHONE_CAMERA_SET_CHANNEL_ACTION",
	HWControllerOffAction:                "HW_CONTROLLER_OFF_ACTION",
	HWControllerResetAction:              "HW_CONTROLLER_RESET_ACTION",
	SWControllerOffAction:                "SW_CONTROLLER_OFF_ACTION",
	SWControllerResetAction:              "SW_CONTROLLER_RESET_ACTION",
	PhoneOffAction:                       "PHONE_OFF_ACTION",
	PhoneResetAction:                     "PHONE_RESET_ACTION",
	ErrorAction:                          "ERROR_ACTION",
	CustomAction:                         "CUSTOM_ACTION",
	DebugInformationUpdate:               "DEBUG_INFORMATION_UPDATE",
	HWControllerTypeRequest:              "HW_CONTROLLER_TYPE_REQUEST",
	HWControllerTypeReply:                "HW_CONTROLLER_TYPE_REPLY",
	SWControllerTypeRequest:              "SW_CONTROLLER_TYPE_REQUEST",
	SWControllerTypeReply:                "SW_CONTROLLER_TYPE_REPLY",
	PhoneTypeRequest:                     "PHONE_TYPE_REQUEST",
	PhoneTypeReply:                       "PHONE_TYPE_REPLY",
	HWControllerSetMemoryAction:          "HW_CONTROLLER_SET_MEMORY_ACTION",
	EnvironmentScanSubscription:          "ENVIRONMENT_SCAN_SUBSCRIPTION",
	EnvironmentScanHWControllerUpdate:    "ENVIRONMENT_SCAN_HW_CONTROLLER_UPDATE",
	EnvironmentScanSWControllerUpdate:    "ENVIRONMENT_SCAN_SW_CONTROLLER_UPDATE",
	EnvironmentScanPhoneUpdate:           "ENVIRONMENT_SCAN_PHONE_UPDATE",
	ControllerAuthenticateRequest:        "CONTROLLER_AUTHENTICATE_REQUEST",
	ControllerAuthenticateReply:          "CONTROLLER_AUTHENTICATE_REPLY",
	HWControllerGetMemoryRequest:         "HW_CONTROLLER_GET_MEMORY_REQUEST",
	HWControllerGetMemoryReply:           "HW_CONTROLLER_GET_MEMORY_REPLY",
	ProgramCompileRequest:                "PROGRAM_COMPILE_REQUEST",
	ProgramCompileReply:                  "PROGRAM_COMPILE_REPLY",
	ProgramExecuteAction:                 "PROGRAM_EXECUTE_ACTION",
	ProgramCompileExecuteRequest:         "PROGRAM_COMPILE_EXECUTE_REQUEST",
	ProgramCompileExecuteReply:           "PROGRAM_COMPILE_EXECUTE_REPLY",
	ProgramsFetchSubscription:            "PROGRAMS_FETCH_SUBSCRIPTION",
	ProgramsFetchUpdate:                  "PROGRAMS_FETCH_UPDATE",
	ProgramsFetchDoneUpdate:              "PROGRAMS_FETCH_DONE_UPDATE",
	ExecutionStartedAction:               "EXECUTION_STARTED_ACTION",
	ExecutionStopAction:                  "EXECUTION_STOP_ACTION",
	ExecutionRestartAction:               "EXECUTION_RESTART_ACTION",
	ExecutionStoppedAction:               "EXECUTION_STOPPED_ACTION",
	ExecutionDoneAction:                  "EXECUTION_DONE_ACTION",
	ExecutionPrintoutAction:              "EXECUTION_PRINTOUT_ACTION",
	ExecutionDataAction:                  "EXECUTION_DATA_ACTION",
	DebuggingBreakAction:                 "DEBUGGING_BREAK_ACTION",
	DebuggingBreakedAction:               "DEBUGGING_BREAKED_ACTION",
	DebuggingContinueAction:              "DEBUGGING_CONTINUE_ACTION",
	DebuggingAddBreakpointAction:         "DEBUGGING_ADD_BREAKPOINT_ACTION",
	DebuggingRemoveBreakpointAction:      "DEBUGGING_REMOVE_BREAKPOINT_ACTION",
}
