package config

import "github.com/spf13/viper"

// Permissions is the role-derived feature set computed once at
// startup. It is an immutable value passed explicitly to whichever
// component gates on it; nothing reads ambient process state after
// Load returns.
type Permissions struct {
	HRReadOnly bool `mapstructure:"hr_readonly"`
	UserRead   bool `mapstructure:"user_read"`
	UserEdit   bool `mapstructure:"user_edit"`
	AdminRead  bool `mapstructure:"admin_read"`
	AdminEdit  bool `mapstructure:"admin_edit"`
}

// Presets bundle the individual flags into the three supported roles.
const (
	PresetReadonly = "readonly"
	PresetUser     = "user"
	PresetAdmin    = "admin"
)

// resolvePermissions applies the preset when one is set, otherwise the
// individual flags (with HR analytics enabled by default).
func resolvePermissions(v *viper.Viper) Permissions {
	switch v.GetString("permissions.preset") {
	case PresetReadonly:
		return Permissions{HRReadOnly: true}
	case PresetUser:
		return Permissions{HRReadOnly: true, UserRead: true, UserEdit: true}
	case PresetAdmin:
		return Permissions{HRReadOnly: true, UserRead: true, UserEdit: true, AdminRead: true, AdminEdit: true}
	}

	return Permissions{
		HRReadOnly: v.GetBool("permissions.hr_readonly"),
		UserRead:   v.GetBool("permissions.user_read"),
		UserEdit:   v.GetBool("permissions.user_edit"),
		AdminRead:  v.GetBool("permissions.admin_read"),
		AdminEdit:  v.GetBool("permissions.admin_edit"),
	}
}

// EnabledFeatures lists the enabled feature groups for diagnostics.
func (p Permissions) EnabledFeatures() []string {
	features := []string{}
	if p.HRReadOnly {
		features = append(features, "HR Analytics (Read-only)")
	}
	if p.UserRead {
		features = append(features, "User Time Entries (Read)")
	}
	if p.UserEdit {
		features = append(features, "User Time Entries (Edit)")
	}
	if p.AdminRead {
		features = append(features, "Team Leader - Read")
	}
	if p.AdminEdit {
		features = append(features, "Team Leader - Edit")
	}
	return features
}
