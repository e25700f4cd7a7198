package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jwseo/maechuldash-backend/config"
	"github.com/jwseo/maechuldash-backend/internal/app/model"
	"github.com/jwseo/maechuldash-backend/internal/app/repository"
	"github.com/jwseo/maechuldash-backend/internal/db"
	"github.com/jwseo/maechuldash-backend/pkg/util"
)

// 매장 면적 기준정보 XLSX 를 store_areas 테이블로 적재하고, 필요하면
// 관리자 계정을 만든다.
//
//	go run cmd/seed/main.go -areas stores.xlsx
//	go run cmd/seed/main.go -admin admin@example.com -password secret
func main() {
	areasPath := flag.String("areas", "", "매장 면적 XLSX 파일 경로")
	adminEmail := flag.String("admin", "", "생성할 관리자 이메일")
	adminPassword := flag.String("password", "", "관리자 비밀번호")
	flag.Parse()

	if *areasPath == "" && *adminEmail == "" {
		log.Fatal("Usage: seed -areas <xlsx_file> | -admin <email> -password <pw>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if *areasPath != "" {
		seedAreas(*areasPath)
	}
	if *adminEmail != "" {
		seedAdmin(*adminEmail, *adminPassword)
	}
}

func seedAreas(filePath string) {
	fmt.Printf("Reading XLSX file: %s\n", filePath)
	areas, err := readAreasFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}
	fmt.Printf("Total store areas to import: %d\n", len(areas))

	areaRepo := repository.NewStoreAreaRepository(db.GetDB())
	if err := areaRepo.UpsertBatch(areas); err != nil {
		log.Fatal("Failed to upsert store areas:", err)
	}
	fmt.Println("Store area import completed successfully!")
}

func seedAdmin(email, password string) {
	if password == "" {
		log.Fatal("-password is required with -admin")
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	userRepo := repository.NewUserRepository(db.GetDB())
	if err := userRepo.Create(&model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         "관리자",
		Role:         model.RoleAdmin,
	}); err != nil {
		log.Fatal("Failed to create admin user:", err)
	}
	fmt.Printf("Admin user created: %s\n", email)
}

// readAreasFromXLSX expects columns: 매장코드 | 매장명 | 면적(평).
// 첫 행은 헤더로 건너뛴다.
func readAreasFromXLSX(filePath string) ([]model.StoreArea, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows found in XLSX file")
	}

	var areas []model.StoreArea
	seen := make(map[string]bool) // 중복 제거용
	skipped := 0

	for i, row := range rows[1:] {
		if len(row) < 3 {
			skipped++
			continue
		}

		code := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if code == "" || seen[code] {
			skipped++
			continue
		}

		area, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil || area <= 0 {
			fmt.Printf("Skipping row %d: invalid area %q\n", i+2, row[2])
			skipped++
			continue
		}

		seen[code] = true
		areas = append(areas, model.StoreArea{
			StoreCode:  code,
			StoreName:  name,
			AreaPyeong: area,
		})
	}

	if skipped > 0 {
		fmt.Printf("Skipped %d rows\n", skipped)
	}
	return areas, nil
}
