package dto

import "time"

type LocationDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type DeliveryRequest struct {
	Pickup    LocationDTO `json:"pickup"`
	Dropoff   LocationDTO `json:"dropoff"`
	FoodItem  string      `json:"food_item"`
	MaxPrice  *float64    `json:"max_price"`
	MaxTime   *int        `json:"max_time"`
	Objective string      `json:"objective"`
}

type DeliveryResponse struct {
	OrderID       string      `json:"order_id"`
	Client        LocationDTO `json:"client"`
	Restaurant    LocationDTO `json:"restaurant"`
	Agent         LocationDTO `json:"agent"`
	Transport     string      `json:"transport"`
	FoodItem      string      `json:"food_item"`
	Price         float64     `json:"price"`
	EstimatedTime int         `json:"estimated_time"`
	CreatedAt     time.Time   `json:"created_at"`
}
