package axcp

// ErrorCode is the second byte of an ERROR_ACTION payload, identifying why
// a preceding command could not be carried out.
type ErrorCode uint8

const (
	ErrUnspecifiedOpcode           ErrorCode = 1
	ErrAnalogPortOutOfRange        ErrorCode = 2
	ErrDigitalPortOutOfRange       ErrorCode = 3
	ErrMotorPortOutOfRange         ErrorCode = 4
	ErrServoPortOutOfRange         ErrorCode = 5
	ErrServoIsOff                  ErrorCode = 6
	ErrPhoneSensorTypeNotSupported ErrorCode = 7
	ErrPhoneSensorTypeDoesNotExist ErrorCode = 8
	ErrChannelNotConfigured        ErrorCode = 9
	ErrNoBlobAtIndex               ErrorCode = 10
	ErrOperationNotSupported       ErrorCode = 11
	ErrPayloadLengthOutOfRange     ErrorCode = 12
	ErrIncompleteCommandTimeout    ErrorCode = 13

	ErrProgramNotFound          ErrorCode = 150
	ErrProgramAlreadyRunning    ErrorCode = 151
	ErrNoHWControllerConnected  ErrorCode = 152
	ErrProgramIsNotRunning      ErrorCode = 153
	ErrProgramIsNotBreaked      ErrorCode = 154

	ErrUnspecified ErrorCode = 255
)
