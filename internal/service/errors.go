package service

import "errors"

var (
	// ErrInvalidParameter - некорректные координаты, радиус или пустой идентификатор
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNotFound - место или пользователь не существуют
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable - ошибка ввода-вывода хранилища, запрос можно повторить
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrCheckinConflict - хранилище отклонило вторую отметку в том же окне
	ErrCheckinConflict = errors.New("checkin conflict")
)
