package dto

// UpdateProfileRequest carries a partial profile update. Keys outside the
// whitelist of mutable fields are silently ignored by the user service.
type UpdateProfileRequest map[string]interface{}
