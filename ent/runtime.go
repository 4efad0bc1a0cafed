// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hyejin/orbquest/ent/arsessionevent"
	"github.com/hyejin/orbquest/ent/collectionevent"
	"github.com/hyejin/orbquest/ent/scanevent"
	"github.com/hyejin/orbquest/ent/schema"
	"github.com/hyejin/orbquest/ent/setting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	arsessioneventMixin := schema.ARSessionEvent{}.Mixin()
	arsessioneventMixinFields0 := arsessioneventMixin[0].Fields()
	_ = arsessioneventMixinFields0
	arsessioneventFields := schema.ARSessionEvent{}.Fields()
	_ = arsessioneventFields
	// arsessioneventDescTimestamp is the schema descriptor for timestamp field.
	arsessioneventDescTimestamp := arsessioneventMixinFields0[1].Descriptor()
	// arsessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	arsessionevent.DefaultTimestamp = arsessioneventDescTimestamp.Default.(func() time.Time)
	// arsessioneventDescSessionID is the schema descriptor for session_id field.
	arsessioneventDescSessionID := arsessioneventFields[0].Descriptor()
	// arsessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	arsessionevent.SessionIDValidator = arsessioneventDescSessionID.Validators[0].(func(string) error)
	// arsessioneventDescAction is the schema descriptor for action field.
	arsessioneventDescAction := arsessioneventFields[1].Descriptor()
	// arsessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	arsessionevent.ActionValidator = arsessioneventDescAction.Validators[0].(func(string) error)
	// arsessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	arsessioneventDescDurationSecs := arsessioneventFields[3].Descriptor()
	// arsessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	arsessionevent.DefaultDurationSecs = arsessioneventDescDurationSecs.Default.(int)
	collectioneventMixin := schema.CollectionEvent{}.Mixin()
	collectioneventMixinFields0 := collectioneventMixin[0].Fields()
	_ = collectioneventMixinFields0
	collectioneventFields := schema.CollectionEvent{}.Fields()
	_ = collectioneventFields
	// collectioneventDescTimestamp is the schema descriptor for timestamp field.
	collectioneventDescTimestamp := collectioneventMixinFields0[1].Descriptor()
	// collectionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	collectionevent.DefaultTimestamp = collectioneventDescTimestamp.Default.(func() time.Time)
	// collectioneventDescSessionID is the schema descriptor for session_id field.
	collectioneventDescSessionID := collectioneventFields[0].Descriptor()
	// collectionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	collectionevent.SessionIDValidator = collectioneventDescSessionID.Validators[0].(func(string) error)
	// collectioneventDescTotalAfter is the schema descriptor for total_after field.
	collectioneventDescTotalAfter := collectioneventFields[1].Descriptor()
	// collectionevent.TotalAfterValidator is a validator for the "total_after" field. It is called by the builders before save.
	collectionevent.TotalAfterValidator = collectioneventDescTotalAfter.Validators[0].(func(int) error)
	// collectioneventDescAccepted is the schema descriptor for accepted field.
	collectioneventDescAccepted := collectioneventFields[3].Descriptor()
	// collectionevent.DefaultAccepted holds the default value on creation for the accepted field.
	collectionevent.DefaultAccepted = collectioneventDescAccepted.Default.(bool)
	scaneventMixin := schema.ScanEvent{}.Mixin()
	scaneventMixinFields0 := scaneventMixin[0].Fields()
	_ = scaneventMixinFields0
	scaneventFields := schema.ScanEvent{}.Fields()
	_ = scaneventFields
	// scaneventDescTimestamp is the schema descriptor for timestamp field.
	scaneventDescTimestamp := scaneventMixinFields0[1].Descriptor()
	// scanevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	scanevent.DefaultTimestamp = scaneventDescTimestamp.Default.(func() time.Time)
	// scaneventDescSessionID is the schema descriptor for session_id field.
	scaneventDescSessionID := scaneventFields[0].Descriptor()
	// scanevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	scanevent.SessionIDValidator = scaneventDescSessionID.Validators[0].(func(string) error)
	// scaneventDescAnchorsCreated is the schema descriptor for anchors_created field.
	scaneventDescAnchorsCreated := scaneventFields[1].Descriptor()
	// scanevent.DefaultAnchorsCreated holds the default value on creation for the anchors_created field.
	scanevent.DefaultAnchorsCreated = scaneventDescAnchorsCreated.Default.(int)
	// scanevent.AnchorsCreatedValidator is a validator for the "anchors_created" field. It is called by the builders before save.
	scanevent.AnchorsCreatedValidator = scaneventDescAnchorsCreated.Validators[0].(func(int) error)
	// scaneventDescObjectsDetected is the schema descriptor for objects_detected field.
	scaneventDescObjectsDetected := scaneventFields[2].Descriptor()
	// scanevent.DefaultObjectsDetected holds the default value on creation for the objects_detected field.
	scanevent.DefaultObjectsDetected = scaneventDescObjectsDetected.Default.(int)
	// scanevent.ObjectsDetectedValidator is a validator for the "objects_detected" field. It is called by the builders before save.
	scanevent.ObjectsDetectedValidator = scaneventDescObjectsDetected.Validators[0].(func(int) error)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
	// settingDescValue is the schema descriptor for value field.
	settingDescValue := settingFields[1].Descriptor()
	// setting.DefaultValue holds the default value on creation for the value field.
	setting.DefaultValue = settingDescValue.Default.(string)
}
