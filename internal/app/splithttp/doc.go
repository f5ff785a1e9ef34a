// Package splithttp реализует HTTP API сервиса нарезки аудио. Основные эндпоинты:
//   - POST /split — принимает multipart-загрузку и возвращает сегменты base64'ом в одном ответе.
//   - GET /health — доступность ffmpeg и его версия.
//   - GET / — описание сервиса и список эндпоинтов.
//   - GET /metrics — Prometheus-метрики.
//   - GET /admin/history, GET /admin/config, POST /admin/gc — служебная поверхность.
package splithttp
