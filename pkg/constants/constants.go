// pkg/constants/constants.go
package constants

//============== РОЛИ ПОЛЬЗОВАТЕЛЕЙ ==============

const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleEngineer   = "ENGINEER"
	RoleCourier    = "COURIER"
)

//============== СТАТУСЫ ЗАДАЧ ==============

const (
	TaskStatusPending   = "PENDING"
	TaskStatusCompleted = "COMPLETED"
)

//============== СТАТУСЫ ЗАЯВОК НА ЗАКУПКУ ==============

const (
	PurchaseStatusPending   = "PENDING"
	PurchaseStatusPurchased = "PURCHASED"
	PurchaseStatusCompleted = "COMPLETED"
)

// Финальные статусы заявки: при переходе проставляется completedAt.
var PurchaseFinalStatuses = []string{
	PurchaseStatusPurchased,
	PurchaseStatusCompleted,
}

func IsPurchaseFinalStatus(code string) bool {
	for _, s := range PurchaseFinalStatuses {
		if s == code {
			return true
		}
	}
	return false
}

//============== ТИПЫ ФОТО РАБОЧЕГО МЕСТА ==============

const (
	PhotoTypeDeskStart = "DESK_START"
	PhotoTypeDeskEnd   = "DESK_END"
)

//============== РЕЖИМ РАБОТЫ ТОЧЕК ==============

const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "21:00"
)

// Рабочие дни по умолчанию для новой точки.
var DefaultWorkDays = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"}

//============== ПРОЧЕЕ ==============

const (
	// Пароль по умолчанию для пользователей, созданных администратором.
	DefaultUserPassword = "123456"

	// Окно активности курьера для дашборда и карты.
	CourierActiveWindowMs = 3600000
)
