package store

// Table — закрытый перечень таблиц хранилища. Обращение к неизвестной
// таблице невозможно выразить, поэтому запасной вариант "по умолчанию
// users" из старой текстовой прослойки здесь не нужен.
type Table string

const (
	TableUsers            Table = "users"
	TablePoints           Table = "points"
	TableShops            Table = "shops"
	TableTasks            Table = "tasks"
	TableTaskTemplates    Table = "taskTemplates"
	TablePurchaseRequests Table = "purchaseRequests"
	TableWorkplacePhotos  Table = "workplacePhotos"
	TableCourierLocations Table = "courierLocations"
)

// AllTables перечисляет таблицы в порядке сериализации снимка.
var AllTables = []Table{
	TableUsers,
	TablePoints,
	TableShops,
	TableTasks,
	TableTaskTemplates,
	TablePurchaseRequests,
	TableWorkplacePhotos,
	TableCourierLocations,
}

// Имена полей, на которые ссылаются диапазонные условия.
const (
	fieldTimestamp = "timestamp"
	fieldTakenAt   = "takenAt"
)

// Filter — закрытое представление условий WHERE.
//
// Eq сравнивает поле строки со значением нестрого: число и его строковая
// запись считаются равными ("5" == 5), потому что вызывающие передают обе
// формы в зависимости от источника. Диапазонные условия заданы отдельными
// полями: TimestampGt — строго больше, TakenAtGte — больше либо равно.
type Filter struct {
	Eq          map[string]any
	TimestampGt *int64
	TakenAtGte  *int64
}

// ByID — фильтр по идентификатору записи.
func ByID(id int64) Filter {
	return ByField("id", id)
}

// ByField — фильтр-равенство по одному полю.
func ByField(field string, value any) Filter {
	return Filter{Eq: map[string]any{field: value}}
}

// Order — сортировка выборки. Сортировка идёт только по идентификатору.
type Order int

const (
	OrderNone Order = iota
	OrderByIDAsc
	OrderByIDDesc
)

// Row — запись таблицы. Имена полей — в camelCase.
type Row map[string]any

// NoLimit отключает ограничение размера выборки.
const NoLimit = 0
