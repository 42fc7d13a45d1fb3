package entities

// OrderStats is the analytics summary for a set of orders.
type OrderStats struct {
	TotalOrders       int                `json:"totalOrders"`
	Completed         int                `json:"completed"`
	InTransit         int                `json:"inTransit"`
	PendingApproval   int                `json:"pendingApproval"`
	AvgExecutionDays  float64            `json:"avgExecutionTime"`
	ByStatus          []StatusCount      `json:"byStatus"`
	ByEntity          []EntityRevenue    `json:"byEntity"`
	OrdersLast30Days  []DailyCount       `json:"ordersOverTime"`
	Revenue           float64            `json:"revenue"`
	Currency          string             `json:"currency"`
	RevenueByCurrency map[string]float64 `json:"revenueByCurrency"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type EntityRevenue struct {
	Entity  string  `json:"entity"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
