package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notification kinds.
const (
	NotifySuccess = "success"
	NotifyError   = "error"
	NotifyWarning = "warning"
	NotifyInfo    = "info"
)

// Upload item statuses.
const (
	UploadPending   = "pending"
	UploadUploading = "uploading"
	UploadSuccess   = "success"
	UploadError     = "error"
)

// Notification is a user-facing message held until dismissed.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// UploadItem tracks one entry of the upload queue. Only the state lives
// here; no file transfer is performed.
type UploadItem struct {
	ID       string `json:"id"`
	FileName string `json:"fileName"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	Error    string `json:"error,omitempty"`
}

// AppState holds cross-page UI state: notifications and the upload queue.
// It is constructed once at startup and passed by reference; there is no
// package-level instance.
type AppState struct {
	mu            sync.RWMutex
	notifications []Notification
	uploadQueue   []UploadItem
}

func NewAppState() *AppState {
	return &AppState{
		notifications: []Notification{},
		uploadQueue:   []UploadItem{},
	}
}

// AddNotification prepends a new unread notification and returns it.
func (a *AppState) AddNotification(kind, title, message string) Notification {
	n := Notification{
		ID:        uuid.New().String(),
		Type:      kind,
		Title:     title,
		Message:   message,
		Timestamp: time.Now(),
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.notifications = append([]Notification{n}, a.notifications...)
	return n
}

// MarkNotificationRead marks a notification as read. Unknown ids are a no-op.
func (a *AppState) MarkNotificationRead(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.notifications {
		if a.notifications[i].ID == id {
			a.notifications[i].Read = true
			return true
		}
	}
	return false
}

// RemoveNotification drops a notification by id.
func (a *AppState) RemoveNotification(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.notifications {
		if a.notifications[i].ID == id {
			a.notifications = append(a.notifications[:i], a.notifications[i+1:]...)
			return true
		}
	}
	return false
}

// ClearNotifications drops all notifications.
func (a *AppState) ClearNotifications() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notifications = []Notification{}
}

// Notifications returns a copy of the notification list, newest first.
func (a *AppState) Notifications() []Notification {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Notification, len(a.notifications))
	copy(out, a.notifications)
	return out
}

// UnreadCount returns the number of unread notifications.
func (a *AppState) UnreadCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	count := 0
	for _, n := range a.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// AddUploadItem appends a pending queue entry and returns it.
func (a *AppState) AddUploadItem(fileName string) UploadItem {
	item := UploadItem{
		ID:       uuid.New().String(),
		FileName: fileName,
		Status:   UploadPending,
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.uploadQueue = append(a.uploadQueue, item)
	return item
}

// UpdateUploadProgress sets the progress percentage of a queue entry.
func (a *AppState) UpdateUploadProgress(id string, progress int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.uploadQueue {
		if a.uploadQueue[i].ID == id {
			a.uploadQueue[i].Progress = progress
			return true
		}
	}
	return false
}

// UpdateUploadStatus sets the status (and optional error) of a queue entry.
func (a *AppState) UpdateUploadStatus(id, status, errMsg string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.uploadQueue {
		if a.uploadQueue[i].ID == id {
			a.uploadQueue[i].Status = status
			a.uploadQueue[i].Error = errMsg
			return true
		}
	}
	return false
}

// RemoveUploadItem drops a queue entry by id.
func (a *AppState) RemoveUploadItem(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.uploadQueue {
		if a.uploadQueue[i].ID == id {
			a.uploadQueue = append(a.uploadQueue[:i], a.uploadQueue[i+1:]...)
			return true
		}
	}
	return false
}

// ClearUploadQueue drops all queue entries.
func (a *AppState) ClearUploadQueue() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.uploadQueue = []UploadItem{}
}

// UploadQueue returns a copy of the queue in insertion order.
func (a *AppState) UploadQueue() []UploadItem {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]UploadItem, len(a.uploadQueue))
	copy(out, a.uploadQueue)
	return out
}
