package service

// Route-level kind names, plural. Comments use the singular post_type tags
// from the model package.
const (
	KindAnnouncements = "announcements"
	KindMarketplace   = "marketplace"
	KindServices      = "services"
)

const PageSize = 10

// PostView is the flat record handed to the presentation layer; raw entity
// rows never leave the service layer.
type PostView struct {
	ID          uint64 `json:"id"`
	PostType    string `json:"post_type"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Content     string `json:"content,omitempty"`
	Description string `json:"description,omitempty"`
	Username    string `json:"username"`
	Price       string `json:"price,omitempty"`
	Date        string `json:"date"`
	Comments    int64  `json:"comments"`
}

type CommentView struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Content  string `json:"content"`
	Date     string `json:"date"`
}

type ShoutView struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func totalPages(count int64) int {
	return int((count + PageSize - 1) / PageSize)
}
