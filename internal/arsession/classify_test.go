package arsession

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not installed", &ErrARCoreNotInstalled{}, MsgInstallARCore},
		{"install declined", &ErrARCoreNotInstalled{UserDeclined: true}, MsgInstallARCore},
		{"runtime too old", &ErrARCoreTooOld{}, MsgUpdateARCore},
		{"sdk too old", &ErrSDKTooOld{}, MsgUpdateApp},
		{"device incompatible", &ErrDeviceIncompatible{}, MsgDeviceUnsupported},
		{"camera unavailable", &ErrCameraUnavailable{}, MsgCameraUnavailable},
		{"camera unavailable wrapped cause", &ErrCameraUnavailable{Err: errors.New("open /dev/video0: busy")}, MsgCameraUnavailable},
		{"camera disconnected", &ErrCameraAccess{Reason: CameraDisconnected}, MsgCameraDisconnected},
		{"camera hardware error", &ErrCameraAccess{Reason: CameraHardwareError}, MsgCameraError},
		{"camera in use", &ErrCameraAccess{Reason: CameraInUse}, MsgCameraInUse},
		{"too many cameras", &ErrCameraAccess{Reason: CameraMaxInUse}, MsgTooManyCameras},
		{"camera policy", &ErrCameraAccess{Reason: CameraDisabledPolicy}, MsgCameraPolicy},
		{"unknown camera sub-reason", &ErrCameraAccess{Reason: CameraFailure("thermal_shutdown")}, MsgCameraError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassifyWrapped(t *testing.T) {
	err := fmt.Errorf("session init: %w", &ErrCameraAccess{Reason: CameraInUse})
	if got := Classify(err); got != MsgCameraInUse {
		t.Errorf("Classify(wrapped) = %q, want %q", got, MsgCameraInUse)
	}
}

func TestClassifyFallbackKeepsTypeAndText(t *testing.T) {
	err := errors.New("something novel went wrong")
	got := Classify(err)
	want := fmt.Sprintf("Failed to create AR session: %T: %v", err, err)
	if got != want {
		t.Errorf("Classify(unknown) = %q, want %q", got, want)
	}
}
