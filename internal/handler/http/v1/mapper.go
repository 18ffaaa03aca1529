package v1

import (
	"github.com/shenikar/geo_checkin_service/internal/models"
)

// DTOToPlaceModel преобразует запрос на создание места в доменную модель
func DTOToPlaceModel(dto CreatePlaceRequest) *models.Place {
	place := &models.Place{
		Name:        dto.Name,
		Description: dto.Description,
		Rating:      dto.Rating,
	}
	if dto.Latitude != nil {
		place.Latitude = *dto.Latitude
	}
	if dto.Longitude != nil {
		place.Longitude = *dto.Longitude
	}
	return place
}

// ModelToPlaceResponse преобразует доменную модель места в DTO для ответа
func ModelToPlaceResponse(model *models.Place) *PlaceResponse {
	return &PlaceResponse{
		ID:           model.ID,
		Name:         model.Name,
		Description:  model.Description,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		Rating:       model.Rating,
		CheckinCount: model.CheckinCount,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ModelsToNearbyPlacesResponse оборачивает результат поиска мест в {"data": {...}}
func ModelsToNearbyPlacesResponse(places []*models.NearbyPlace) *NearbyPlacesResponse {
	results := make([]*NearbyPlaceResponse, len(places))
	for i, place := range places {
		results[i] = &NearbyPlaceResponse{
			PlaceResponse: *ModelToPlaceResponse(&place.Place),
			Distance:      place.Distance,
		}
	}
	return &NearbyPlacesResponse{Data: NearbyPlacesData{Count: len(results), Results: results}}
}

// DTOToUserModel преобразует запрос пользователя в доменную модель
func DTOToUserModel(dto UpsertUserRequest) *models.User {
	return &models.User{
		UserID: dto.UserID,
		Name:   dto.Name,
		Image:  dto.Image,
	}
}

// ModelToUserResponse преобразует доменную модель пользователя в DTO для ответа
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		UserID:    model.UserID,
		Name:      model.Name,
		Image:     model.Image,
		LastLat:   model.LastLat,
		LastLng:   model.LastLng,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// ModelsToNearbyUsersResponse оборачивает результат поиска пользователей в {"data": {...}}
func ModelsToNearbyUsersResponse(users []*models.NearbyUser) *NearbyUsersResponse {
	results := make([]*NearbyUserResponse, len(users))
	for i, user := range users {
		results[i] = &NearbyUserResponse{
			UserResponse: *ModelToUserResponse(&user.User),
			Distance:     user.Distance,
		}
	}
	return &NearbyUsersResponse{Data: NearbyUsersData{Count: len(results), Results: results}}
}

// DTOToLocationModel преобразует запрос с координатами в доменную модель
func DTOToLocationModel(dto ReportLocationRequest) *models.Location {
	location := &models.Location{UserID: dto.UserID}
	if dto.Latitude != nil {
		location.Latitude = *dto.Latitude
	}
	if dto.Longitude != nil {
		location.Longitude = *dto.Longitude
	}
	return location
}

// ModelToLocationResponse преобразует доменную модель местоположения в DTO для ответа
func ModelToLocationResponse(model *models.Location) *LocationResponse {
	return &LocationResponse{
		ID:        model.ID,
		UserID:    model.UserID,
		UserName:  model.UserName,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// ModelsToLocationResponses преобразует слайс моделей в слайс DTO
func ModelsToLocationResponses(models []*models.Location) []*LocationResponse {
	responses := make([]*LocationResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToLocationResponse(model)
	}
	return responses
}

// ModelToCheckinResponse преобразует итог попытки отметки в DTO для ответа
func ModelToCheckinResponse(result *models.CheckinResult) *CheckinResponse {
	if result.Accepted && result.Checkin != nil {
		id := result.Checkin.ID
		at := result.Checkin.CheckinTime
		count := result.CheckinCount
		return &CheckinResponse{
			Accepted:     true,
			CheckinID:    &id,
			CheckinTime:  &at,
			CheckinCount: &count,
		}
	}
	hours := result.HoursRemaining
	return &CheckinResponse{
		Accepted:        false,
		LastCheckinTime: result.LastCheckinTime,
		HoursRemaining:  &hours,
	}
}

// ModelToCheckinStatusResponse преобразует состояние пары в DTO для ответа
func ModelToCheckinStatusResponse(status *models.CheckinStatus) *CheckinStatusResponse {
	resp := &CheckinStatusResponse{
		Eligible:        status.Eligible,
		LastCheckinTime: status.LastCheckinTime,
	}
	if !status.Eligible {
		hours := status.HoursRemaining
		resp.HoursRemaining = &hours
	}
	return resp
}

// ModelsToCheckinCountsResponse преобразует количество отметок по пользователям в DTO
func ModelsToCheckinCountsResponse(placeID int64, counts []models.UserCheckinCount) *CheckinCountsResponse {
	resp := &CheckinCountsResponse{
		PlaceID: placeID,
		Counts:  make([]UserCheckinCountResponse, len(counts)),
	}
	for i, c := range counts {
		resp.Counts[i] = UserCheckinCountResponse{UserID: c.UserID, Count: c.Count}
	}
	return resp
}
