package errors

import "errors"

// ErrOptimisticLock 乐观锁冲突：记录已被其他操作修改
var ErrOptimisticLock = errors.New("数据已被其他操作修改，请刷新后重试")

// ErrSasForm SAS 表单不跟踪单项措施，不允许产生措施关联行
var ErrSasForm = errors.New("SAS 表单不允许关联单项措施")
