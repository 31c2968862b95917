package models

import "time"

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending       OrderStatus = "PENDING"
	StatusInPreparation OrderStatus = "IN_PREPARATION"
	StatusInTransit     OrderStatus = "IN_TRANSIT"
	StatusDelivered     OrderStatus = "DELIVERED"
	StatusCancelled     OrderStatus = "CANCELLED"
)

type Order struct {
	ID       uint        `json:"id" gorm:"primaryKey"`
	ClientID uint        `json:"client_id" gorm:"not null"`
	Client   User        `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	CadetID  *uint       `json:"cadet_id"`
	Cadet    *User       `json:"cadet,omitempty" gorm:"foreignKey:CadetID"`
	Status   OrderStatus `json:"status" gorm:"not null;default:'PENDING'"`
	Total    float64     `json:"total"`
	Notes    string      `json:"notes"`

	LineItems     []OrderLineItem      `json:"line_items,omitempty" gorm:"foreignKey:OrderID"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type OrderLineItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"order_id" gorm:"not null"`
	DishID   uint    `json:"dish_id" gorm:"not null"`
	Dish     Dish    `json:"dish,omitempty" gorm:"foreignKey:DishID"`
	Quantity int     `json:"quantity" gorm:"not null"`
	Subtotal float64 `json:"subtotal" gorm:"not null"` // sale price × quantity at order time
}

// OrderStatusHistory tracks every status change for auditing
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"` // user ID who triggered the transition
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
