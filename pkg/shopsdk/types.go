package shopsdk

import (
	"encoding/json"
	"time"
)

// ============================================================================
// Envelopes
// ============================================================================

// MessageResponse is the body of operations that return only a message.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DataResponse is the success envelope around T.
type DataResponse[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database  string `json:"database"`
	Signer    string `json:"signer"`
	Federated string `json:"federated"`
	Mail      string `json:"mail"`
}

// ============================================================================
// Auth
// ============================================================================

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type FirebaseLoginRequest struct {
	IDToken string `json:"idToken"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	ID       int64  `json:"id"`
	Password string `json:"password"`
}

// User is the public view of an identity.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar"`
}

type UserData struct {
	User User `json:"user"`
}

// ============================================================================
// Catalog
// ============================================================================

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       *string   `json:"image"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductRequest creates or updates a product. Nil fields are left unchanged
// on update.
type ProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
}

type ProductData struct {
	Product Product `json:"product"`
}

type ProductPage struct {
	Products      []Product `json:"products"`
	TotalProducts int       `json:"totalProducts"`
	TotalPages    int       `json:"totalPages"`
	CurrentPage   int       `json:"currentPage"`
}

// ============================================================================
// Cart & favorites
// ============================================================================

type CartItem struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"userId"`
	ProductID int64    `json:"productId"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}

type AddToCartRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  *int  `json:"quantity,omitempty"`
}

type UpdateCartRequest struct {
	Quantity int `json:"quantity"`
}

type CartItemData struct {
	CartItem CartItem `json:"cartItem"`
}

type CartData struct {
	CartItems []CartItem `json:"cartItems"`
}

type Favorite struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"userId"`
	ProductID int64    `json:"productId"`
	Product   *Product `json:"product,omitempty"`
}

type AddFavoriteRequest struct {
	ProductID int64 `json:"productId"`
}

type FavoriteData struct {
	Favorite Favorite `json:"favorite"`
}

type FavoritesData struct {
	Favorites []Favorite `json:"favorites"`
}

// ============================================================================
// Orders
// ============================================================================

type OrderLine struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

type CreateOrderRequest struct {
	Items        []OrderLine     `json:"items"`
	CustomerInfo json.RawMessage `json:"customerInfo,omitempty"`
}

type OrderItem struct {
	ID        int64    `json:"id"`
	ProductID int64    `json:"productId"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Product   *Product `json:"product,omitempty"`
}

type OrderCustomer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type Order struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"userId"`
	TotalAmount  float64         `json:"totalAmount"`
	Status       string          `json:"status"`
	CustomerInfo json.RawMessage `json:"customerInfo,omitempty"`
	Items        []OrderItem     `json:"items"`
	User         *OrderCustomer  `json:"user,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type OrderData struct {
	Order Order `json:"order"`
}

type OrdersData struct {
	Orders []Order `json:"orders"`
}

type OrderPage struct {
	Orders      []Order `json:"orders"`
	TotalOrders int     `json:"totalOrders"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
}

// ============================================================================
// Contact
// ============================================================================

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
