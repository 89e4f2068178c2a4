package ports

type LockSourcePort interface {
	ReadLock(path string) ([]byte, error)
}
