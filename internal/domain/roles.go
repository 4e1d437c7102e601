package domain

// Permission identifiers assigned to users. The values are stable ids the
// admin frontend maps to translated labels.
const (
	RoleAdmin    = "63398d4c-d0e9-4daf-9504-30d32810527e"
	RoleOperator = "2c53695a-7401-4dc8-979b-e93a5f4e357d"
	RoleUser     = "10bf9306-5a92-4acf-bf7b-4cdfd0d19a56"
)

// NamedID pairs a stable id with a frontend translation key.
type NamedID struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WebConfig is static metadata shipped with login and refresh responses so
// the admin frontend can render permission and gender selectors.
type WebConfig struct {
	Permissions []NamedID `json:"permissions"`
	Genders     []NamedID `json:"genders"`
}

// DefaultWebConfig returns the metadata for the current deployment.
func DefaultWebConfig() WebConfig {
	return WebConfig{
		Permissions: []NamedID{
			{ID: RoleAdmin, Name: "resources.users.permissions.admin"},
			{ID: RoleOperator, Name: "resources.users.permissions.operator"},
			{ID: RoleUser, Name: "resources.users.permissions.user"},
		},
		Genders: []NamedID{
			{ID: GenderMale, Name: "resources.users.genders.male"},
			{ID: GenderFemale, Name: "resources.users.genders.female"},
			{ID: GenderUnknown, Name: "resources.users.genders.unknown"},
		},
	}
}
