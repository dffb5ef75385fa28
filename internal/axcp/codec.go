package axcp

import (
	"errors"
	"fmt"
	"io"

	"github.com/PRIArobotics/HedgehogLightPi/internal/ioutil"
)

// ErrLengthMismatch is returned by Encode when a fixed-length opcode is
// given a payload of the wrong size.
var ErrLengthMismatch = errors.New("axcp: payload length does not match opcode")

// ErrUnknownOpcode is returned by Decode when the leading byte does not
// name a known opcode; the payload length class for such a byte is itself
// unknown, so nothing past the opcode byte is consumed.
var ErrUnknownOpcode = errors.New("axcp: unknown opcode")

// variableLength marks an opcode whose payload is chunk-encoded rather
// than fixed-size.
const variableLength = -1

// lengthTable gives the payload length, in bytes, carried by each known
// opcode, mirroring payloadLength() in the original command table byte for
// byte. variableLength marks chunked payloads. Opcodes absent from this
// table have unknown length and cannot be framed or decoded past their
// leading byte.
var lengthTable = map[Opcode]int{
	NOP:  0,
	NOP2: 0,

	SendCustomDataAction:       variableLength,
	CustomDataAvailableRequest: 0,
	CustomDataAvailableReply:   4,
	ReadCustomDataRequest:      4,
	ReadCustomDataReply:        variableLength,

	AnalogSensorRequest:      1,
	AnalogSensorReply:        3,
	AnalogSensorSubscription: variableLength,
	AnalogSensorUpdate:       variableLength,
	AnalogPullupAction:       variableLength,

	DigitalSensorRequest:      1,
	DigitalSensorReply:        2,
	DigitalSensorSubscription: variableLength,
	DigitalSensorUpdate:       variableLength,
	DigitalPullupAction:       variableLength,
	DigitalOutputModeAction:   variableLength,
	DigitalOutputLevelAction:  2,

	MotorPowerAction:                    3,
	MotorVelocityAction:                 3,
	MotorPowerAbsolutePositionAction:    6,
	MotorVelocityAbsolutePositionAction: 6,
	MotorPowerRelativePositionAction:    6,
	MotorVelocityRelativePositionAction: 6,
	MotorFreezeAction:                   1,
	MotorBrakeAction:                    2,
	MotorOffAction:                      1,

	MotorPositionRequest:       1,
	MotorPositionReply:         5,
	MotorPositionReachedAction: 1,
	MotorPositionSubscription:  variableLength,
	MotorPositionUpdate:        variableLength,
	MotorClearPositionAction:   1,
	MotorVelocityRequest:       1,
	MotorVelocityReply:         3,
	MotorVelocitySubscription:  variableLength,
	MotorVelocityUpdate:        variableLength,

	ServoOnOffAction: 2,
	ServoDriveAction: 2,

	ControllerBatteryChargeRequest:        0,
	ControllerBatteryChargeReply:          1,
	ControllerBatteryChargingStateRequest: 0,
	ControllerBatteryChargingStateReply:   1,
	PhoneBatteryChargeRequest:             0,
	PhoneBatteryChargeReply:               1,
	PhoneBatteryChargingStateRequest:      0,
	PhoneBatteryChargingStateReply:        1,
	ControllerBatteryUpdate:               2,

	PhoneSensorRequest:             1,
	PhoneSensorReply:               variableLength,
	PhoneSensorAvailabilityRequest: 0,
	PhoneSensorAvailabilityReply:   4,

	PhoneCameraTakePictureAction:   0,
	PhoneCameraGetBlobCountRequest: 1,
	PhoneCameraGetBlobCountReply:   2,
	PhoneCameraGetBlobRequest:      2,
	PhoneCameraGetBlobReply:        10,
	PhoneCameraSetChannelAction:    7,

	HWControllerOffAction:   0,
	HWControllerResetAction: 0,
	SWControllerOffAction:   0,
	SWControllerResetAction: 0,
	PhoneOffAction:          0,
	PhoneResetAction:        0,
	ErrorAction:             2,
	CustomAction:            variableLength,

	DebugInformationUpdate: variableLength,

	HWControllerTypeRequest:     0,
	HWControllerTypeReply:       1,
	SWControllerTypeRequest:     0,
	SWControllerTypeReply:       1,
	PhoneTypeRequest:            0,
	PhoneTypeReply:              1,
	HWControllerSetMemoryAction: variableLength,

	EnvironmentScanSubscription:       0,
	EnvironmentScanHWControllerUpdate: 33,
	EnvironmentScanSWControllerUpdate: 1,
	EnvironmentScanPhoneUpdate:        1,
	ControllerAuthenticateRequest:     variableLength,
	ControllerAuthenticateReply:       1,
	HWControllerGetMemoryRequest:      1,
	HWControllerGetMemoryReply:        variableLength,

	ProgramCompileRequest:        variableLength,
	ProgramCompileReply:          variableLength,
	ProgramExecuteAction:         ProgramNameLen + 2,
	ProgramCompileExecuteRequest: variableLength,
	ProgramCompileExecuteReply:   variableLength,
	ProgramsFetchSubscription:    0,
	ProgramsFetchUpdate:          variableLength,
	ProgramsFetchDoneUpdate:      0,

	ExecutionStartedAction:  ProgramNameLen + 2,
	ExecutionStopAction:     ProgramNameLen + 2,
	ExecutionRestartAction:  ProgramNameLen + 2,
	ExecutionStoppedAction:  ProgramNameLen + 2,
	ExecutionDoneAction:     ProgramNameLen + 6,
	ExecutionPrintoutAction: variableLength,
	ExecutionDataAction:     variableLength,

	DebuggingBreakAction:            ProgramNameLen + 2,
	DebuggingBreakedAction:          variableLength,
	DebuggingContinueAction:         ProgramNameLen + 2,
	DebuggingAddBreakpointAction:    ProgramNameLen + 4,
	DebuggingRemoveBreakpointAction: ProgramNameLen + 4,
}

// Command is a single decoded or to-be-encoded opcode plus payload.
type Command struct {
	Op      Opcode
	Payload []byte
}

// PayloadLength reports the fixed payload length for op, and whether op's
// payload is chunk-encoded instead of fixed-size. The third return value
// is false if op is not a known opcode at all.
func PayloadLength(op Opcode) (n int, variable bool, known bool) {
	n, known = lengthTable[op]
	if !known {
		return 0, false, false
	}
	return n, n == variableLength, true
}

// Encode writes cmd to w as a single framed command: one opcode byte,
// followed by a fixed-size payload or a chunked variable-length payload
// depending on cmd.Op's length class.
func Encode(w io.Writer, cmd Command) error {
	n, variable, known := PayloadLength(cmd.Op)
	if !known {
		return fmt.Errorf("%w: %d", ErrUnknownOpcode, cmd.Op)
	}

	if !variable && len(cmd.Payload) != n {
		return fmt.Errorf("%s: %w (want %d, got %d)", cmd.Op, ErrLengthMismatch, n, len(cmd.Payload))
	}

	if err := ioutil.FullWrite(w, []byte{byte(cmd.Op)}); err != nil {
		return err
	}

	if !variable {
		if n == 0 {
			return nil
		}
		return ioutil.FullWrite(w, cmd.Payload)
	}

	data := cmd.Payload
	for len(data) >= 255 {
		if err := writeChunk(w, data[:255]); err != nil {
			return err
		}
		data = data[255:]
	}
	return writeChunk(w, data)
}

func writeChunk(w io.Writer, chunk []byte) error {
	if err := ioutil.FullWrite(w, []byte{byte(len(chunk))}); err != nil {
		return err
	}
	if len(chunk) == 0 {
		return nil
	}
	return ioutil.FullWrite(w, chunk)
}

// Decode reads a single framed command from r. For an opcode outside the
// known table, Decode returns a Command with a nil Payload alongside
// ErrUnknownOpcode; the caller still learns which opcode byte was seen.
func Decode(r io.Reader) (Command, error) {
	var opBuf [1]byte
	if err := ioutil.FullRead(r, opBuf[:]); err != nil {
		return Command{}, err
	}
	op := Opcode(opBuf[0])

	n, variable, known := PayloadLength(op)
	if !known {
		return Command{Op: op}, fmt.Errorf("%w: %d", ErrUnknownOpcode, op)
	}

	if !variable {
		if n == 0 {
			return Command{Op: op}, nil
		}
		payload := make([]byte, n)
		if err := ioutil.FullRead(r, payload); err != nil {
			return Command{}, err
		}
		return Command{Op: op, Payload: payload}, nil
	}

	var payload []byte
	for {
		var lenBuf [1]byte
		if err := ioutil.FullRead(r, lenBuf[:]); err != nil {
			return Command{}, err
		}
		chunkLen := int(lenBuf[0])
		if chunkLen > 0 {
			chunk := make([]byte, chunkLen)
			if err := ioutil.FullRead(r, chunk); err != nil {
				return Command{}, err
			}
			payload = append(payload, chunk...)
		}
		if chunkLen < 255 {
			break
		}
	}
	return Command{Op: op, Payload: payload}, nil
}
