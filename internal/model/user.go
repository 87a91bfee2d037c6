package model

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User — platform account, maps to users
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	FullName     string `gorm:"type:varchar(255)"                              json:"full_name,omitempty"`
	Location     string `gorm:"type:varchar(255)"                              json:"location,omitempty"`
	ProfilePhoto string `gorm:"type:varchar(500)"                              json:"profile_photo,omitempty"`
	Bio          string `gorm:"type:text"                                      json:"bio,omitempty"`
	Availability string `gorm:"type:varchar(255)"                              json:"availability,omitempty"`
	IsPublic     bool   `gorm:"not null;default:true"                          json:"is_public"`
	IsActive     bool   `gorm:"not null;default:true"                          json:"is_active"`
	Role         string `gorm:"type:varchar(20);not null;default:'user'"       json:"role"`
	Timestamps

	SkillsOffered []Skill `gorm:"many2many:user_skills_offered;foreignKey:UserID;joinForeignKey:UserID;References:SkillID;joinReferences:SkillID" json:"skills_offered,omitempty"`
	SkillsWanted  []Skill `gorm:"many2many:user_skills_wanted;foreignKey:UserID;joinForeignKey:UserID;References:SkillID;joinReferences:SkillID"  json:"skills_wanted,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// OffersSkill reports whether skillID is in the user's offered set.
// Requires SkillsOffered to be preloaded.
func (u *User) OffersSkill(skillID string) bool {
	for _, s := range u.SkillsOffered {
		if s.SkillID == skillID {
			return true
		}
	}
	return false
}
