package dto

type DashboardStatsDTO struct {
	TotalUsers            int64 `json:"totalUsers"`
	TotalPoints           int64 `json:"totalPoints"`
	TotalTasks            int64 `json:"totalTasks"`
	CompletedTasks        int64 `json:"completedTasks"`
	PendingTasks          int64 `json:"pendingTasks"`
	TotalPhotosToday      int64 `json:"totalPhotosToday"`
	ActiveCouriers        int64 `json:"activeCouriers"`
	TotalPurchaseRequests int64 `json:"totalPurchaseRequests"`
}

type PointStatsDTO struct {
	PointID          int64  `json:"pointId"`
	PointName        string `json:"pointName"`
	TotalEmployees   int64  `json:"totalEmployees"`
	ActiveEmployees  int64  `json:"activeEmployees"`
	TasksTotal       int64  `json:"tasksTotal"`
	TasksCompleted   int64  `json:"tasksCompleted"`
	PhotosToday      int64  `json:"photosToday"`
	PurchaseRequests int64  `json:"purchaseRequests"`
}
