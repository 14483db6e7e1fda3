package services

import "github.com/quietpines/sondera/internal/models"

// fileFieldSanitizers is the explicit allow-list of file-valued fields.
// Every snapshot write runs through this table; a file field missing here
// would leak binary content into storage, so new file fields must be
// registered.
var fileFieldSanitizers = []func(data *models.OnboardingData){
	func(data *models.OnboardingData) {
		data.Profile.ProfilePhoto = data.Profile.ProfilePhoto.Sanitized()
	},
	func(data *models.OnboardingData) {
		data.License.LicenseDocument = data.License.LicenseDocument.Sanitized()
	},
}

// SanitizeForStorage returns a deep copy with every binary upload replaced
// by its filename, safe to serialize to any backend and to return to
// clients.
func SanitizeForStorage(data models.OnboardingData) models.OnboardingData {
	sanitized := data.Clone()
	for _, sanitize := range fileFieldSanitizers {
		sanitize(&sanitized)
	}
	return sanitized
}
