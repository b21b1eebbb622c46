package service

import "errors"

// Таксономия ошибок ядра. Хендлеры переводят их в HTTP-статусы;
// ErrNotFound/ErrForbidden от шлюза владения прокидываются без перевода.
var (
	// ErrNotFound — сущность с таким id отсутствует.
	ErrNotFound = errors.New("not found")

	// ErrForbidden — сущность существует, но принадлежит другому пользователю.
	ErrForbidden = errors.New("access denied")

	// ErrEmailTaken — email уже занят при регистрации или смене профиля.
	ErrEmailTaken = errors.New("email already in use")

	// ErrBadCredentials — неверная пара email/пароль.
	ErrBadCredentials = errors.New("invalid credentials")

	// ErrFileNotFound — файла с таким id нет в коллекции покемона.
	ErrFileNotFound = errors.New("file not found")

	// ErrAssetHost — сбой внешнего хостинга ассетов (upload/delete).
	// Глотается (только логируется) в каскадных удалениях, но поднимается
	// как жёсткая ошибка в точечных операциях.
	ErrAssetHost = errors.New("asset host failure")
)
