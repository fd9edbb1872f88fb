package myErrors

import "errors"

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrRepoNotFound 表示记录不存在，或调用方对记录没有访问权。
// 权限不足与不存在共用同一个错误，避免通过 404/403 的差异泄露资源是否存在。
var ErrRepoNotFound = errors.New("repo: record not found")

// ErrConflict 表示唯一性冲突（用户名/邮箱/文件名重复等）。
var ErrConflict = errors.New("repo: conflict")

// ErrInvalidInput 表示经过绑定校验后仍不合法的业务输入（编辑参数越界等）。
var ErrInvalidInput = errors.New("service: invalid input")
