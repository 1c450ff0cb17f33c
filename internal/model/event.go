package model

import "time"

// Event 活动模型
type Event struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	EventDate     time.Time  `json:"event_date"`
	Location      string     `json:"location"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	Tags          []string   `json:"tags"`
	CreatorID     int        `json:"creator_id"`
	AttendeeCount int        `json:"attendee_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// EventCreateRequest 创建活动请求
type EventCreateRequest struct {
	Title       string    `json:"title" binding:"required" validate:"required"`
	Description string    `json:"description" binding:"required" validate:"required"`
	EventDate   time.Time `json:"event_date" binding:"required,future_date" validate:"required"`
	Location    string    `json:"location" binding:"required" validate:"required"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Tags        []string  `json:"tags"`
}

// Attendee 活动参与者
type Attendee struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	ProfileType ProfileType `json:"profile_type"`
}

// AttendanceResponse 加入/退出活动后的响应
type AttendanceResponse struct {
	EventID         int        `json:"event_id"`
	AttendanceCount int        `json:"attendance_count"`
	UserAttending   bool       `json:"user_attending"`
	Attendees       []Attendee `json:"attendees,omitempty"`
}
