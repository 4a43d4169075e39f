package http

import (
	"time"

	"scribeassist/internal/core/application/usecases/queries"
	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/core/domain/model/content"
	"scribeassist/internal/core/domain/model/inquiry"
	"scribeassist/internal/core/domain/model/order"
)

// OrderResponse is the JSON representation of an order. Listing rows omit
// the long-form content fields; detail and mutation replies carry them all.
type OrderResponse struct {
	ID                string     `json:"id"`
	Number            string     `json:"number"`
	CustomerID        string     `json:"customer_id"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	Subject           string     `json:"subject"`
	AcademicLevel     string     `json:"academic_level"`
	PaperType         string     `json:"paper_type"`
	PageCount         int        `json:"page_count"`
	Words             int        `json:"words,omitempty"`
	Deadline          time.Time  `json:"deadline"`
	PricePerPage      int        `json:"price_per_page,omitempty"`
	UrgencyMultiplier float64    `json:"urgency_multiplier,omitempty"`
	TotalPrice        int        `json:"total_price"`
	Status            string     `json:"status"`
	PaymentStatus     string     `json:"payment_status"`
	AssignedWriter    *string    `json:"assigned_writer,omitempty"`
	Requirements      string     `json:"requirements,omitempty"`
	Attachments       []string   `json:"attachments,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func orderFromAggregate(ord *order.Order) OrderResponse {
	var writerID *string
	if id := ord.AssignedWriter(); id != nil {
		s := id.String()
		writerID = &s
	}

	return OrderResponse{
		ID:                ord.ID().String(),
		Number:            ord.Number().String(),
		CustomerID:        ord.CustomerID().String(),
		Title:             ord.Title(),
		Description:       ord.Description(),
		Subject:           ord.Subject(),
		AcademicLevel:     ord.AcademicLevel().String(),
		PaperType:         ord.PaperType().String(),
		PageCount:         ord.PageCount(),
		Words:             ord.Words(),
		Deadline:          ord.Deadline(),
		PricePerPage:      ord.Quote().PricePerPage(),
		UrgencyMultiplier: ord.Quote().UrgencyMultiplier(),
		TotalPrice:        ord.Quote().TotalPrice(),
		Status:            ord.Status().String(),
		PaymentStatus:     ord.PaymentStatus().String(),
		AssignedWriter:    writerID,
		Requirements:      ord.Requirements(),
		Attachments:       ord.Attachments(),
		Notes:             ord.Notes(),
		CompletedAt:       ord.CompletedAt(),
		CreatedAt:         ord.CreatedAt(),
	}
}

func orderFromReadModel(row queries.OrderResponse) OrderResponse {
	var writerID *string
	if row.AssignedWriter != nil {
		s := row.AssignedWriter.String()
		writerID = &s
	}

	return OrderResponse{
		ID:             row.ID.String(),
		Number:         row.Number,
		CustomerID:     row.CustomerID.String(),
		Title:          row.Title,
		Subject:        row.Subject,
		AcademicLevel:  row.AcademicLevel,
		PaperType:      row.PaperType,
		PageCount:      row.PageCount,
		Deadline:       row.Deadline,
		TotalPrice:     row.TotalPrice,
		Status:         row.Status,
		PaymentStatus:  row.PaymentStatus,
		AssignedWriter: writerID,
		CreatedAt:      row.CreatedAt,
	}
}

// OrdersPageResponse is one page of the order listing.
type OrdersPageResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

// InquiryResponse is the JSON representation of an inquiry.
type InquiryResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Subject     string     `json:"subject"`
	Message     string     `json:"message"`
	Source      string     `json:"source,omitempty"`
	UserID      *string    `json:"user_id,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Notes       string     `json:"notes,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func inquiryFromAggregate(inq *inquiry.Inquiry) InquiryResponse {
	var userID *string
	if id := inq.UserID(); id != nil {
		s := id.String()
		userID = &s
	}

	return InquiryResponse{
		ID:          inq.ID().String(),
		Name:        inq.Name(),
		Email:       inq.Email(),
		Subject:     inq.Subject(),
		Message:     inq.Message(),
		Source:      inq.Source(),
		UserID:      userID,
		Status:      inq.Status().String(),
		Priority:    inq.Priority().String(),
		Notes:       inq.Notes(),
		RespondedAt: inq.RespondedAt(),
		CreatedAt:   inq.CreatedAt(),
	}
}

func inquiryFromReadModel(row queries.InquiryResponse) InquiryResponse {
	var userID *string
	if row.UserID != nil {
		s := row.UserID.String()
		userID = &s
	}

	return InquiryResponse{
		ID:          row.ID.String(),
		Name:        row.Name,
		Email:       row.Email,
		Subject:     row.Subject,
		Message:     row.Message,
		Source:      row.Source,
		UserID:      userID,
		Status:      row.Status,
		Priority:    row.Priority,
		Notes:       row.Notes,
		RespondedAt: row.RespondedAt,
		CreatedAt:   row.CreatedAt,
	}
}

// InquiriesPageResponse is one page of the inquiry listing.
type InquiriesPageResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
}

// PostResponse is the JSON representation of a blog post.
type PostResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content"`
	Category    string     `json:"category,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	AuthorID    string     `json:"author_id"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func postFromAggregate(post *content.Post) PostResponse {
	return PostResponse{
		ID:          post.ID().String(),
		Title:       post.Title(),
		Slug:        post.Slug().String(),
		Excerpt:     post.Excerpt(),
		Content:     post.Content(),
		Category:    post.Category(),
		Tags:        post.Tags(),
		AuthorID:    post.AuthorID().String(),
		Published:   post.IsPublished(),
		PublishedAt: post.PublishedAt(),
		CreatedAt:   post.CreatedAt(),
	}
}

func postFromReadModel(row queries.PostResponse) PostResponse {
	return PostResponse{
		ID:          row.ID.String(),
		Title:       row.Title,
		Slug:        row.Slug,
		Excerpt:     row.Excerpt,
		Content:     row.Content,
		Category:    row.Category,
		Tags:        row.Tags,
		AuthorID:    row.AuthorID.String(),
		Published:   row.Published,
		PublishedAt: row.PublishedAt,
		CreatedAt:   row.CreatedAt,
	}
}

// PostsPageResponse is the paginated post listing reply.
type PostsPageResponse struct {
	Posts []PostResponse `json:"posts"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// UserResponse is the JSON representation of a user account. The password
// hash never leaves the server.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func userFromAggregate(user *account.User) UserResponse {
	return UserResponse{
		ID:        user.ID().String(),
		Email:     user.Email(),
		Name:      user.Name(),
		Role:      user.Role().String(),
		Active:    user.IsActive(),
		CreatedAt: user.CreatedAt(),
	}
}

// QuoteResponse is the reply to an ad-hoc price calculation.
type QuoteResponse struct {
	PricePerPage      int     `json:"price_per_page"`
	UrgencyMultiplier float64 `json:"urgency_multiplier"`
	TotalPrice        int     `json:"total_price"`
	Currency          string  `json:"currency"`
	DaysUntilDeadline int     `json:"days_until_deadline"`
}
