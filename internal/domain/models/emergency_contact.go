package models

import "time"

// EmergencyContact is one entry in a society's emergency directory
type EmergencyContact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AdminID   uint      `gorm:"index;not null" json:"admin_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Role      string    `gorm:"type:varchar(50);not null" json:"role"`
	Phone     string    `gorm:"type:varchar(30);not null" json:"phone"`
	Theme     string    `gorm:"type:varchar(20)" json:"theme"` // red, green, blue, orange
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultEmergencyContacts are seeded for every new society
var DefaultEmergencyContacts = []EmergencyContact{
	{Name: "Police Station", Role: "Emergency", Phone: "100", Theme: "red"},
	{Name: "Fire Brigade", Role: "Emergency", Phone: "101", Theme: "red"},
	{Name: "Ambulance", Role: "Medical", Phone: "102", Theme: "red"},
	{Name: "Main Gate Security", Role: "Security", Phone: "+91 98765 43210", Theme: "green"},
	{Name: "Society Office", Role: "Admin", Phone: "0120-456-7890", Theme: "blue"},
	{Name: "Electrician", Role: "Maintenance", Phone: "+91 91234 56789", Theme: "orange"},
	{Name: "Plumber", Role: "Maintenance", Phone: "+91 99887 76655", Theme: "orange"},
}
