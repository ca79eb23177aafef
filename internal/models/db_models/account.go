package db_models

const (
	RoleUser  = "user"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique;not null"`
	PasswordHash string
	Role         string `gorm:"index;not null;default:user"`
	Verified     bool   `gorm:"not null;default:false"`

	Places  []Place  `gorm:"foreignKey:AuthorID"`
	Reviews []Review `gorm:"foreignKey:AuthorID"`
}
