package models

import "time"

// KVEntry é a linha da tabela usada como armazenamento chave-valor.
type KVEntry struct {
	Key       string    `gorm:"column:entry_key;primaryKey;size:100"`
	Value     string    `gorm:"column:entry_value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
