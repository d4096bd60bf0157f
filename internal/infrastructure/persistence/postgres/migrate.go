package postgres

import (
	"gorm.io/gorm"
)

// Migrate cria/atualiza o schema e garante a linha do contador de asset codes
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&UserModel{},
		&ImovelModel{},
		&AtivoModel{},
		&ChamadoModel{},
		&AssetCodeSeqModel{},
	); err != nil {
		return err
	}

	return seedAssetCodeSeq(db)
}

// seedAssetCodeSeq inicializa o contador com o maior código já emitido,
// para que bases existentes continuem a sequência de onde pararam
func seedAssetCodeSeq(db *gorm.DB) error {
	return db.Exec(`
		INSERT INTO asset_code_seqs (id, value)
		SELECT 1, COALESCE((SELECT MAX(CAST(asset_code AS BIGINT)) FROM ativos), 0)
		WHERE NOT EXISTS (SELECT 1 FROM asset_code_seqs WHERE id = 1)
	`).Error
}
