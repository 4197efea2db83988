package domain

import (
	"context"

	"github.com/simp-lee/stockroom/internal/table"
)

// Customer is a buyer on record.
type Customer struct {
	BaseModel
	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:50" json:"phone"`
	Address string `gorm:"size:255" json:"address"`
}

// CustomerInput carries the writable customer fields.
type CustomerInput struct {
	Name    string
	Phone   string
	Address string
}

// CustomerStats summarizes the customer collection.
type CustomerStats struct {
	Total       int `json:"total"`
	WithPhone   int `json:"with_phone"`
	WithAddress int `json:"with_address"`
}

// CustomerRepository persists customers.
type CustomerRepository interface {
	Repository[Customer]
	Count(ctx context.Context) (int64, error)
}

// CustomerService implements customer use cases.
type CustomerService interface {
	CreateCustomer(ctx context.Context, in CustomerInput) (*Customer, error)
	GetCustomer(ctx context.Context, id uint) (*Customer, error)
	ListCustomers(ctx context.Context, q table.Query) (*PageResult[Customer], error)
	UpdateCustomer(ctx context.Context, id uint, in CustomerInput) (*Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error
}

// Supplier statuses. An empty status reads as SupplierActive.
const (
	SupplierActive    = "active"
	SupplierInactive  = "inactive"
	SupplierSuspended = "suspended"
	SupplierBlocked   = "blocked"
	SupplierPending   = "pending"
)

// Supplier is a vendor products are purchased from.
type Supplier struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	PhoneFirst  string `gorm:"size:50" json:"phone_first"`
	PhoneSecond string `gorm:"size:50" json:"phone_second"`
	Address     string `gorm:"size:255" json:"address"`
	Status      string `gorm:"size:20;not null;default:active" json:"status"`
}

// EffectiveStatus returns Status, defaulting to SupplierActive.
func (s Supplier) EffectiveStatus() string {
	if s.Status == "" {
		return SupplierActive
	}
	return s.Status
}

// SupplierInput carries the writable supplier fields.
type SupplierInput struct {
	Name        string
	PhoneFirst  string
	PhoneSecond string
	Address     string
	Status      string
}

// SupplierStats counts suppliers per status. Inactive includes blocked.
type SupplierStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Inactive  int `json:"inactive"`
	Suspended int `json:"suspended"`
	Pending   int `json:"pending"`
}

// SupplierRepository persists suppliers.
type SupplierRepository interface {
	Repository[Supplier]
}

// SupplierService implements supplier use cases.
type SupplierService interface {
	CreateSupplier(ctx context.Context, in SupplierInput) (*Supplier, error)
	GetSupplier(ctx context.Context, id uint) (*Supplier, error)
	ListSuppliers(ctx context.Context, q table.Query) (*PageResult[Supplier], error)
	UpdateSupplier(ctx context.Context, id uint, in SupplierInput) (*Supplier, error)
	DeleteSupplier(ctx context.Context, id uint) error
}

// Staff statuses as stored.
const (
	StaffInactive = 0
	StaffActive   = 1
)

// Staff is an employee record.
type Staff struct {
	BaseModel
	StaffCode string `gorm:"column:staff_id;size:50;uniqueIndex;not null" json:"staff_id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Phone     string `gorm:"size:50" json:"phone"`
	Position  string `gorm:"size:100" json:"position"`
	Status    int    `gorm:"not null" json:"status"`
}

// TableName keeps the collective noun.
func (Staff) TableName() string { return "staff" }

// StaffInput carries the writable staff fields.
type StaffInput struct {
	StaffCode string
	Name      string
	Phone     string
	Position  string
	Status    int
}

// StaffStats counts active and inactive staff.
type StaffStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// StaffRepository persists staff.
type StaffRepository interface {
	Repository[Staff]
}

// StaffService implements staff use cases.
type StaffService interface {
	CreateStaff(ctx context.Context, in StaffInput) (*Staff, error)
	GetStaff(ctx context.Context, id uint) (*Staff, error)
	ListStaff(ctx context.Context, q table.Query) (*PageResult[Staff], error)
	UpdateStaff(ctx context.Context, id uint, in StaffInput) (*Staff, error)
	DeleteStaff(ctx context.Context, id uint) error
}
