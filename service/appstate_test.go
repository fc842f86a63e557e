package service

import "testing"

func TestNotificationsNewestFirst(t *testing.T) {
	state := NewAppState()

	state.AddNotification(NotifyInfo, "first", "message one")
	state.AddNotification(NotifyError, "second", "message two")

	notifications := state.Notifications()
	if len(notifications) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(notifications))
	}
	if notifications[0].Title != "second" {
		t.Errorf("Expected newest first, got %s", notifications[0].Title)
	}
	if notifications[0].ID == notifications[1].ID {
		t.Error("Expected unique notification ids")
	}
	if notifications[0].Read {
		t.Error("Expected new notifications to be unread")
	}
}

func TestMarkNotificationRead(t *testing.T) {
	state := NewAppState()
	n := state.AddNotification(NotifyWarning, "renewal", "contract up for renewal")

	if !state.MarkNotificationRead(n.ID) {
		t.Fatal("Expected mark read to succeed")
	}
	if state.UnreadCount() != 0 {
		t.Errorf("Expected 0 unread, got %d", state.UnreadCount())
	}

	if state.MarkNotificationRead("unknown-id") {
		t.Error("Expected mark read to fail for unknown id")
	}
}

func TestRemoveAndClearNotifications(t *testing.T) {
	state := NewAppState()
	n1 := state.AddNotification(NotifyInfo, "a", "")
	state.AddNotification(NotifyInfo, "b", "")

	if !state.RemoveNotification(n1.ID) {
		t.Fatal("Expected remove to succeed")
	}
	if len(state.Notifications()) != 1 {
		t.Errorf("Expected 1 notification left, got %d", len(state.Notifications()))
	}

	state.ClearNotifications()
	if len(state.Notifications()) != 0 {
		t.Error("Expected all notifications cleared")
	}
}

func TestUploadQueueLifecycle(t *testing.T) {
	state := NewAppState()

	item := state.AddUploadItem("contract.pdf")
	if item.Status != UploadPending {
		t.Errorf("Expected pending status, got %s", item.Status)
	}

	if !state.UpdateUploadStatus(item.ID, UploadUploading, "") {
		t.Fatal("Expected status update to succeed")
	}
	if !state.UpdateUploadProgress(item.ID, 60) {
		t.Fatal("Expected progress update to succeed")
	}

	queue := state.UploadQueue()
	if len(queue) != 1 {
		t.Fatalf("Expected 1 queue entry, got %d", len(queue))
	}
	if queue[0].Status != UploadUploading || queue[0].Progress != 60 {
		t.Errorf("Unexpected queue entry: %+v", queue[0])
	}

	state.UpdateUploadStatus(item.ID, UploadError, "upload failed")
	queue = state.UploadQueue()
	if queue[0].Error != "upload failed" {
		t.Errorf("Expected error recorded, got %q", queue[0].Error)
	}

	if !state.RemoveUploadItem(item.ID) {
		t.Fatal("Expected remove to succeed")
	}
	if len(state.UploadQueue()) != 0 {
		t.Error("Expected empty queue after remove")
	}
}

func TestClearUploadQueue(t *testing.T) {
	state := NewAppState()
	state.AddUploadItem("a.pdf")
	state.AddUploadItem("b.docx")

	state.ClearUploadQueue()
	if len(state.UploadQueue()) != 0 {
		t.Error("Expected queue cleared")
	}
}

func TestUploadQueueCopies(t *testing.T) {
	state := NewAppState()
	state.AddUploadItem("a.pdf")

	queue := state.UploadQueue()
	queue[0].FileName = "mutated"

	if state.UploadQueue()[0].FileName == "mutated" {
		t.Error("Expected UploadQueue to return a copy")
	}
}
