package service

import "errors"

// Ошибки уровня бизнес-логики, транслируемые в HTTP-коды на уровне delivery
var (
	ErrStoryNotFound      = errors.New("история не найдена")
	ErrVoiceNotFound      = errors.New("голосовая запись не найдена")
	ErrInvalidAudioFormat = errors.New("разрешены только файлы MP3")
)
