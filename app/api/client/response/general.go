package response

type ErrorDetail struct {
	Key     string `json:"key,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type GeneralResponse[T any] struct {
	Code         int           `json:"code"`
	Message      string        `json:"message,omitempty"`
	Data         T             `json:"data,omitempty"`
	ErrorDetails []ErrorDetail `json:"error_details,omitempty"`
}

func ToSuccessResponse[T any](data T) GeneralResponse[T] {
	return GeneralResponse[T]{
		Message: "success",
		Data:    data,
	}
}

func ToErrorResponse(code int, message string) GeneralResponse[any] {
	return GeneralResponse[any]{
		Code:    code,
		Message: message,
	}
}

type PaginationResponse[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

func ToPaginationResponse[T any](data []T, total int, page int, limit int) PaginationResponse[T] {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	if data == nil {
		data = []T{}
	}

	return PaginationResponse[T]{
		Data: data,
		Meta: Meta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}
}

type HealthResponse struct {
	Status string `json:"status"`
}
