package dto

import "github.com/dilshat/lead-store/model"

// Form carries the values typed into the landing page form.
type Form struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Dashboard struct {
	Stats  model.Stats        `json:"stats"`
	Recent []model.Submission `json:"recent"`
}

// Notice is a toast shown to the person who triggered an action.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Destructive bool   `json:"destructive,omitempty"`
}
