package handler

import "github.com/sanosuguru/go-cinema-booking/internal/domain/show"

// ShowRequest は上映回を指定するリクエスト項目
type ShowRequest struct {
	Movie   string `json:"movie" query:"movie" validate:"required" example:"Avengers"`
	Date    string `json:"date" query:"date" validate:"required,datetime=2006-01-02" example:"2025-01-10"`
	Theatre string `json:"theatre" query:"theatre" validate:"required" example:"Rajah"`
	Time    string `json:"time" query:"time" validate:"required" example:"10:00 AM"`
}

func (r ShowRequest) key() show.Key {
	return show.Key{Movie: r.Movie, Date: r.Date, Theatre: r.Theatre, Time: r.Time}
}

// ShowResponse は上映回のレスポンス項目
type ShowResponse struct {
	Movie   string `json:"movie"`
	Date    string `json:"date"`
	Theatre string `json:"theatre"`
	Time    string `json:"time"`
}

func toShowResponse(k show.Key) ShowResponse {
	return ShowResponse{Movie: k.Movie, Date: k.Date, Theatre: k.Theatre, Time: k.Time}
}
