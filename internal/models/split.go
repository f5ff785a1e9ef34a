package models

import "time"

// Upload — содержимое одного загруженного файла вместе с заявленным именем.
// Живёт только в рамках одного запроса.
type Upload struct {
	FileName string
	Content  []byte
}

// Segment описывает одну нарезанную часть: порядковый номер, base64-данные,
// имя сгенерированного файла и его размер в байтах.
type Segment struct {
	Index    int    `json:"index"`
	Data     string `json:"data"`
	FileName string `json:"fileName"`
	Size     int64  `json:"size"`
}

// SplitResult агрегирует результат нарезки для ответа API.
type SplitResult struct {
	Success      bool      `json:"success"`
	TotalChunks  int       `json:"totalChunks"`
	Chunks       []Segment `json:"chunks"`
	OriginalSize int64     `json:"originalSize"`
	Message      string    `json:"message"`
}

// HealthStatus — результат проверки доступности внешнего инструмента.
type HealthStatus struct {
	Healthy bool
	Version string
	Detail  string
}

// SplitRecord — запись в истории о выполненной (или упавшей) нарезке.
type SplitRecord struct {
	ID           string    `json:"id"`
	FileName     string    `json:"file_name"`
	OriginalSize int64     `json:"original_size"`
	TotalChunks  int       `json:"total_chunks"`
	Success      bool      `json:"success"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}
