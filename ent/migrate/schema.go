// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArSessionEventsColumns holds the columns for the "ar_session_events" table.
	ArSessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Nullable: true},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// ArSessionEventsTable holds the schema information for the "ar_session_events" table.
	ArSessionEventsTable = &schema.Table{
		Name:       "ar_session_events",
		Columns:    ArSessionEventsColumns,
		PrimaryKey: []*schema.Column{ArSessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "arsessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ArSessionEventsColumns[1]},
			},
			{
				Name:    "arsessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ArSessionEventsColumns[2]},
			},
			{
				Name:    "arsessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ArSessionEventsColumns[3]},
			},
			{
				Name:    "arsessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{ArSessionEventsColumns[4]},
			},
		},
	}
	// CollectionEventsColumns holds the columns for the "collection_events" table.
	CollectionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "total_after", Type: field.TypeInt},
		{Name: "object_name", Type: field.TypeString, Nullable: true},
		{Name: "accepted", Type: field.TypeBool, Default: true},
	}
	// CollectionEventsTable holds the schema information for the "collection_events" table.
	CollectionEventsTable = &schema.Table{
		Name:       "collection_events",
		Columns:    CollectionEventsColumns,
		PrimaryKey: []*schema.Column{CollectionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "collectionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CollectionEventsColumns[1]},
			},
			{
				Name:    "collectionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CollectionEventsColumns[2]},
			},
			{
				Name:    "collectionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{CollectionEventsColumns[3]},
			},
			{
				Name:    "collectionevent_accepted",
				Unique:  false,
				Columns: []*schema.Column{CollectionEventsColumns[6]},
			},
		},
	}
	// ScanEventsColumns holds the columns for the "scan_events" table.
	ScanEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "anchors_created", Type: field.TypeInt, Default: 0},
		{Name: "objects_detected", Type: field.TypeInt, Default: 0},
	}
	// ScanEventsTable holds the schema information for the "scan_events" table.
	ScanEventsTable = &schema.Table{
		Name:       "scan_events",
		Columns:    ScanEventsColumns,
		PrimaryKey: []*schema.Column{ScanEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scanevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ScanEventsColumns[1]},
			},
			{
				Name:    "scanevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ScanEventsColumns[2]},
			},
			{
				Name:    "scanevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ScanEventsColumns[3]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Default: ""},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArSessionEventsTable,
		CollectionEventsTable,
		ScanEventsTable,
		SettingsTable,
	}
)

func init() {
}
