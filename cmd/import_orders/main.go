package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderData struct {
	Recipient  string   `json:"recipient"`
	Locality   string   `json:"locality"`
	WeightKg   float64  `json:"weight_kg"`
	ValueCents int64    `json:"value_cents"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

type OrdersFile struct {
	Orders []OrderData `json:"orders"`
}

func main() {
	dbSource := flag.String("db", "postgresql:///dispatch?sslmode=disable", "database connection string")
	file := flag.String("file", "orders.json", "orders JSON file")
	flag.Parse()

	// 连接数据库
	conn, err := pgx.Connect(context.Background(), *dbSource)
	if err != nil {
		log.Fatal("无法连接数据库:", err)
	}
	defer conn.Close(context.Background())

	// 读取JSON文件
	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal("无法读取文件:", err)
	}

	var ordersFile OrdersFile
	if err := json.Unmarshal(data, &ordersFile); err != nil {
		log.Fatal("无法解析JSON:", err)
	}

	fmt.Printf("准备导入 %d 条订单数据...\n", len(ordersFile.Orders))

	// 批量插入
	batchSize := 1000
	for i := 0; i < len(ordersFile.Orders); i += batchSize {
		end := i + batchSize
		if end > len(ordersFile.Orders) {
			end = len(ordersFile.Orders)
		}
		batch := ordersFile.Orders[i:end]

		// 使用CopyFrom批量插入
		rows := make([][]interface{}, len(batch))
		for j, o := range batch {
			if o.WeightKg <= 0 {
				log.Fatalf("订单 %q 重量无效: %v", o.Recipient, o.WeightKg)
			}

			var latitude, longitude pgtype.Float8
			if o.Latitude != nil {
				latitude = pgtype.Float8{Float64: *o.Latitude, Valid: true}
			}
			if o.Longitude != nil {
				longitude = pgtype.Float8{Float64: *o.Longitude, Valid: true}
			}

			rows[j] = []interface{}{o.Recipient, o.Locality, o.WeightKg, o.ValueCents, latitude, longitude}
		}

		_, err := conn.CopyFrom(
			context.Background(),
			pgx.Identifier{"orders"},
			[]string{"recipient", "locality", "weight_kg", "value_cents", "latitude", "longitude"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			log.Printf("批量插入失败: %v\n", err)
			continue
		}

		fmt.Printf("已导入 %d / %d\n", end, len(ordersFile.Orders))
	}

	fmt.Println("导入完成！")
}
