package dto

type SyncOutput struct {
	Updated []string
}
