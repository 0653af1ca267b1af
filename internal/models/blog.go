package models

type ReactionKind string

const (
	ReactionLike       ReactionKind = "like"
	ReactionLove       ReactionKind = "love"
	ReactionCelebrate  ReactionKind = "celebrate"
	ReactionInsightful ReactionKind = "insightful"
	ReactionCurious    ReactionKind = "curious"
)

func ValidReactionKind(k string) bool {
	switch ReactionKind(k) {
	case ReactionLike, ReactionLove, ReactionCelebrate, ReactionInsightful, ReactionCurious:
		return true
	}
	return false
}

// Blog is a published article with a fixed set of reaction counters.
type Blog struct {
	BaseModel
	Title     string `gorm:"not null" json:"title"`
	Content   string `gorm:"type:text;not null" json:"content"`
	Author    string `gorm:"not null" json:"author"`
	Thumbnail string `json:"thumbnail"`

	Likes       int64 `gorm:"default:0" json:"likes"`
	Loves       int64 `gorm:"default:0" json:"loves"`
	Celebrates  int64 `gorm:"default:0" json:"celebrates"`
	Insightfuls int64 `gorm:"default:0" json:"insightfuls"`
	Curious     int64 `gorm:"default:0" json:"curious"`
}

// ReactionColumn maps a reaction kind to its counter column.
func ReactionColumn(k ReactionKind) string {
	switch k {
	case ReactionLike:
		return "likes"
	case ReactionLove:
		return "loves"
	case ReactionCelebrate:
		return "celebrates"
	case ReactionInsightful:
		return "insightfuls"
	case ReactionCurious:
		return "curious"
	}
	return ""
}
