package model

// Profile is the customer account data shown on the settings page.
type Profile struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	AvatarURL string `json:"avatar"`
}

// ProfileUpdate carries the editable settings fields.  Avatar is optional;
// when present the update is sent as a multipart upload.
type ProfileUpdate struct {
	FullName string  `form:"full_name" json:"full_name" validate:"required,max=120"`
	Phone    string  `form:"phone" json:"phone" validate:"omitempty,max=20"`
	Address  string  `form:"address" json:"address" validate:"omitempty,max=255"`
	Avatar   *Upload `form:"-" json:"-"`
}

// Upload is a file received from a browser form and forwarded to the backend.
type Upload struct {
	FieldName   string
	FileName    string
	ContentType string
	Data        []byte
}
