package dto

// AdminStatsResponse is the panel counters shape.
type AdminStatsResponse struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalBookings    int64 `json:"totalBookings"`
	TotalRestaurants int64 `json:"totalRestaurants"`
	ActiveBookings   int64 `json:"activeBookings"`
}
