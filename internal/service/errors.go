package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrEntryIDEmpty      = errors.New("日记ID不能为空")
	ErrEntryNotFound     = errors.New("日记不存在")
	ErrEntryNotOwned     = errors.New("无权操作该日记")
	ErrNoCurrentUser     = errors.New("当前用户不可用")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserUsernameExist = errors.New("用户名已存在")
	ErrPasswordIncorrect = errors.New("密码错误")
	ErrAnalysisFailed    = errors.New("AI分析请求失败")
	UnauthorizedError    = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrEntryIDEmpty:      BadRequest,
	ErrEntryNotFound:     NotFound,
	ErrEntryNotOwned:     Forbidden,
	ErrNoCurrentUser:     Unauthorized,
	ErrUserNotFound:      NotFound,
	ErrUserUsernameExist: BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrAnalysisFailed:    InternalServerError,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
