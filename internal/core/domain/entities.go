package domain

// Role represents a user role in the system
type Role string

const (
	RoleStudent    Role = "student"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Valid reports whether the role is one of the three known tiers.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// ClubCategory is the fixed set of club categories.
type ClubCategory string

const (
	CategoryAcademic         ClubCategory = "Academic"
	CategoryArts             ClubCategory = "Arts"
	CategoryBusiness         ClubCategory = "Business"
	CategoryCommunityService ClubCategory = "Community Service"
	CategoryCultural         ClubCategory = "Cultural"
	CategoryHobbies          ClubCategory = "Hobbies"
	CategorySTEM             ClubCategory = "STEM"
	CategorySports           ClubCategory = "Sports"
	CategoryLeadership       ClubCategory = "Leadership"
	CategoryOther            ClubCategory = "Other"
)

// Categories lists every club category in display order.
var Categories = []ClubCategory{
	CategoryAcademic,
	CategoryArts,
	CategoryBusiness,
	CategoryCommunityService,
	CategoryCultural,
	CategoryHobbies,
	CategorySTEM,
	CategorySports,
	CategoryLeadership,
	CategoryOther,
}

// Valid reports whether the category is a known one.
func (c ClubCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// MeetingFrequency describes how often a club meets.
type MeetingFrequency string

const (
	FrequencyWeekly   MeetingFrequency = "Weekly"
	FrequencyBiWeekly MeetingFrequency = "Bi-weekly"
	FrequencyMonthly  MeetingFrequency = "Monthly"
	FrequencyVaries   MeetingFrequency = "Varies"
)

// NotificationTypeAdminApproval is the only notification type the
// approval queue currently carries.
const NotificationTypeAdminApproval = "admin_approval"
