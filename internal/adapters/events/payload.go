package events

import (
	"grid-dispatch-service/internal/domain"
	"time"
)

type point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// orderEvent is the wire form of a dispatched order.
type orderEvent struct {
	Type          string    `json:"type"`
	OrderID       string    `json:"order_id"`
	Client        point     `json:"client"`
	Restaurant    point     `json:"restaurant"`
	Agent         point     `json:"agent"`
	Transport     string    `json:"transport"`
	FoodItem      string    `json:"food_item"`
	Price         float64   `json:"price"`
	EstimatedTime int       `json:"estimated_time"`
	CreatedAt     time.Time `json:"created_at"`
}

func newOrderEvent(o domain.DeliveryOrder) orderEvent {
	return orderEvent{
		Type:          "order.dispatched",
		OrderID:       o.ID,
		Client:        point{Row: o.Client.Row, Col: o.Client.Col},
		Restaurant:    point{Row: o.Restaurant.Row, Col: o.Restaurant.Col},
		Agent:         point{Row: o.Agent.Row, Col: o.Agent.Col},
		Transport:     string(o.Transport),
		FoodItem:      o.FoodItem,
		Price:         o.Price,
		EstimatedTime: o.EstimatedTime,
		CreatedAt:     o.CreatedAt,
	}
}
