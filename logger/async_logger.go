package logger

import (
	"log"

	logModel "freightdesk/models/log"
	"freightdesk/types"

	"gorm.io/gorm"
)

// AsyncLogger persists request audit entries to the logs table without
// blocking the request path.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100),
	}
}

// ProcessLog drains the channel and writes entries to the database. Run it
// in its own goroutine.
func (l *AsyncLogger) ProcessLog() {
	for entry := range l.channel {
		dbLog := logModel.Log{
			Method:          entry.Method,
			URL:             entry.URL,
			RequestBody:     entry.RequestBody,
			ResponseBody:    entry.ResponseBody,
			RequestHeaders:  entry.RequestHeaders,
			ResponseHeaders: entry.ResponseHeaders,
			StatusCode:      entry.StatusCode,
			CreatedAt:       entry.CreatedAt,
		}

		if err := l.db.Create(&dbLog).Error; err != nil {
			log.Printf("Failed to insert audit log entry: %v", err)
		}
	}
}

// Log pushes a log entry into the channel.
func (l *AsyncLogger) Log(entry types.LogEntry) {
	l.channel <- entry
}
