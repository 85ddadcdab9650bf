package model

// Permission names gate the protected routes of one resource each.
const (
	PermissionCourses      = "courses"
	PermissionToppers      = "toppers"
	PermissionAchievements = "achievements"
	PermissionGallery      = "gallery"
	PermissionContacts     = "contacts"
	PermissionHome         = "home"
	PermissionUsers        = "users"
)

// AllPermissions is a slice of all available permissions.
var AllPermissions = []string{
	PermissionCourses,
	PermissionToppers,
	PermissionAchievements,
	PermissionGallery,
	PermissionContacts,
	PermissionHome,
	PermissionUsers,
}
