package arsession

import (
	"errors"
	"fmt"
)

// User-facing messages for every recognized session failure. The scan
// screen displays these verbatim; nothing else interprets them.
const (
	MsgInstallARCore      = "Please install ARCore"
	MsgUpdateARCore       = "Please update ARCore"
	MsgUpdateApp          = "Please update this app"
	MsgDeviceUnsupported  = "This device does not support AR"
	MsgCameraUnavailable  = "Camera not available. Try restarting the app."
	MsgCameraDisconnected = "Camera disconnected. Please restart the app."
	MsgCameraError        = "Camera error occurred. Please restart the app."
	MsgCameraInUse        = "Camera is in use by another app."
	MsgTooManyCameras     = "Too many cameras in use."
	MsgCameraPolicy       = "Camera is disabled by device policy."
)

// Classify maps a session-creation failure to the message shown to the
// user. It is total over the recognized failure set; anything else falls
// through to a generic message that keeps the original error's type and
// text, since the unclassified case is the one worth diagnosing.
func Classify(err error) string {
	var notInstalled *ErrARCoreNotInstalled
	if errors.As(err, &notInstalled) {
		// Declined installation reads the same as never installed.
		return MsgInstallARCore
	}

	var tooOld *ErrARCoreTooOld
	if errors.As(err, &tooOld) {
		return MsgUpdateARCore
	}

	var sdkTooOld *ErrSDKTooOld
	if errors.As(err, &sdkTooOld) {
		return MsgUpdateApp
	}

	var incompatible *ErrDeviceIncompatible
	if errors.As(err, &incompatible) {
		return MsgDeviceUnsupported
	}

	var access *ErrCameraAccess
	if errors.As(err, &access) {
		switch access.Reason {
		case CameraDisconnected:
			return MsgCameraDisconnected
		case CameraHardwareError:
			return MsgCameraError
		case CameraInUse:
			return MsgCameraInUse
		case CameraMaxInUse:
			return MsgTooManyCameras
		case CameraDisabledPolicy:
			return MsgCameraPolicy
		default:
			// Unknown sub-reasons read as a hardware error, not a
			// distinct category.
			return MsgCameraError
		}
	}

	var unavailable *ErrCameraUnavailable
	if errors.As(err, &unavailable) {
		return MsgCameraUnavailable
	}

	return fmt.Sprintf("Failed to create AR session: %T: %v", err, err)
}
