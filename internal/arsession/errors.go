package arsession

import "fmt"

// CameraFailure is the sub-reason reported when camera access fails.
type CameraFailure string

const (
	CameraDisconnected   CameraFailure = "disconnected"
	CameraHardwareError  CameraFailure = "hardware_error"
	CameraInUse          CameraFailure = "in_use"
	CameraMaxInUse       CameraFailure = "max_in_use"
	CameraDisabledPolicy CameraFailure = "disabled_by_policy"
)

// ErrARCoreNotInstalled indicates the AR runtime is missing from the device.
// UserDeclined is set when the user refused the install prompt; both cases
// resolve to the same user-facing message.
type ErrARCoreNotInstalled struct {
	UserDeclined bool
}

func (e *ErrARCoreNotInstalled) Error() string {
	if e.UserDeclined {
		return "AR runtime installation declined by user"
	}
	return "AR runtime not installed"
}

// ErrARCoreTooOld indicates the installed AR runtime package is below the
// minimum supported version.
type ErrARCoreTooOld struct{}

func (e *ErrARCoreTooOld) Error() string { return "AR runtime package too old" }

// ErrSDKTooOld indicates the host OS/API level is below what the AR SDK
// requires.
type ErrSDKTooOld struct{}

func (e *ErrSDKTooOld) Error() string { return "host SDK too old for AR runtime" }

// ErrDeviceIncompatible indicates the device hardware cannot run AR at all.
type ErrDeviceIncompatible struct{}

func (e *ErrDeviceIncompatible) Error() string { return "device hardware incompatible with AR" }

// ErrCameraUnavailable indicates the camera could not be opened for a
// reason the camera subsystem did not break down further.
type ErrCameraUnavailable struct {
	Err error
}

func (e *ErrCameraUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("camera unavailable: %v", e.Err)
	}
	return "camera unavailable"
}

func (e *ErrCameraUnavailable) Unwrap() error { return e.Err }

// ErrCameraAccess indicates camera access failed with a specific
// sub-reason reported by the camera subsystem.
type ErrCameraAccess struct {
	Reason CameraFailure
}

func (e *ErrCameraAccess) Error() string {
	return fmt.Sprintf("camera access failed: %s", e.Reason)
}
