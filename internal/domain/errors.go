package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("kullanıcı markette bulunamadı")
	ErrUserExists         = errors.New("kullanıcı zaten mevcut")
	ErrGameNotFound       = errors.New("oyun bulunamadı")
	ErrDuplicateCopy      = errors.New("oyunun bir kopyası zaten mevcut")
	ErrInsufficientFunds  = errors.New("yetersiz bakiye")
	ErrDailyLimitExceeded = errors.New("günlük kredi limiti aşıldı")
	ErrUnauthorized       = errors.New("yetkili kullanıcı oturumu gerekli")
	ErrNoActiveSession    = errors.New("oturum açmış kullanıcı yok")
	ErrSessionActive      = errors.New("zaten oturum açmış bir kullanıcı var")
	ErrNotBuyer           = errors.New("kullanıcı alıcı değil")
	ErrNotSeller          = errors.New("kullanıcı satıcı değil")
	ErrSelfDeletion       = errors.New("kullanıcı kendini silemez")
	ErrSelfRefund         = errors.New("kullanıcı kendine iade yapamaz")
)
