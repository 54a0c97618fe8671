package models

import "time"

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  UserWithProfile `json:"user"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" form:"full_name" binding:"omitempty,min=3"`
	Phone    string `json:"phone" form:"phone"`
	Company  string `json:"company" form:"company"`
	Address  string `json:"address" form:"address"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" form:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" form:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" binding:"required,eqfield=NewPassword"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" form:"name" binding:"required,min=3"`
	Description string   `json:"description" form:"description"`
	Price       string   `json:"price" form:"price" binding:"required"`
	Category    string   `json:"category" form:"category" binding:"required"`
	ImageURL    string   `json:"image_url" form:"image_url" binding:"omitempty,url"`
	Features    []string `json:"features" form:"features"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name" form:"name" binding:"omitempty,min=3"`
	Description *string  `json:"description" form:"description"`
	Price       *string  `json:"price" form:"price"`
	Category    *string  `json:"category" form:"category" binding:"omitempty,min=1"`
	ImageURL    *string  `json:"image_url" form:"image_url" binding:"omitempty,url"`
	Features    []string `json:"features" form:"features"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" form:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" form:"quantity" binding:"max=999"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" form:"quantity" binding:"required,max=999"`
}

type CheckoutRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Phone   string `json:"phone" form:"phone" binding:"required"`
	Company string `json:"company" form:"company"`
	Address string `json:"address" form:"address" binding:"required"`
	Notes   string `json:"notes" form:"notes"`
}

type CartLineView struct {
	CartLine
	LineTotal          string `json:"line_total"`
	UnitPriceFormatted string `json:"unit_price_formatted"`
	LineTotalFormatted string `json:"line_total_formatted"`
}

type CartView struct {
	Lines     []CartLineView `json:"lines"`
	Summary   CartSummary    `json:"summary"`
	Formatted FormattedTotal `json:"formatted"`
}

type FormattedTotal struct {
	Subtotal   string `json:"subtotal"`
	Tax        string `json:"tax"`
	GrandTotal string `json:"grand_total"`
}

type CheckoutForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Address string `json:"address"`
}

type CheckoutPreview struct {
	Cart CartView     `json:"cart"`
	Form CheckoutForm `json:"form"`
}

type CheckoutConfirmation struct {
	Reference string          `json:"reference"`
	Contact   CheckoutRequest `json:"contact"`
	Lines     []CartLine      `json:"lines"`
	Summary   CartSummary     `json:"summary"`
	PlacedAt  time.Time       `json:"placed_at"`
}

type Response struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message"`
	Data     interface{} `json:"data,omitempty"`
	Redirect string      `json:"redirect,omitempty"`
}

type ErrorResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Error    string            `json:"error,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}
