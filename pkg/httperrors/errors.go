package httperrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yourname/audiosplit_lite/internal/models"
)

type errorBody struct {
	Detail string `json:"detail"`
}

// Write переводит доменную ошибку в HTTP-статус и тело {"detail": ...}.
// Все ошибки нарезки — серверный класс; клиент не получает частичный результат.
func Write(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, models.ErrNotFound) {
		status = http.StatusNotFound
	}
	WriteDetail(w, status, err.Error())
}

// WriteDetail пишет JSON-ошибку с заданным статусом.
func WriteDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Detail: detail})
}
