package model

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Order statuses. Only StatusNew is produced today; the remaining values
// are reserved for a future back-office workflow.
const (
	StatusNew        OrderStatus = "جديد"
	StatusInProgress OrderStatus = "قيد التنفيذ"
	StatusCompleted  OrderStatus = "مكتمل"
	StatusCancelled  OrderStatus = "ملغي"
)

// Order is an immutable snapshot of a completed checkout. Items are a deep
// copy of the cart at completion time, so later catalogue edits never
// alter order history. Total always equals the sum of item price times
// cart quantity at snapshot time.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerAddress string      `json:"customerAddress"`
	Items           []CartItem  `json:"items"`
	Total           int64       `json:"total"`
	Date            string      `json:"date"`
	Status          OrderStatus `json:"status"`
}
