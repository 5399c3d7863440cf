// Package main - solarcalc CLI
// 수익성 분석 / 한전 시설부담금 계산기를 오프라인으로 실행
//
// 사용법:
//
//	go run ./cmd/solarcalc profit --capacity 100 --investment 150000000
//	go run ./cmd/solarcalc kepco --capacity 6 --voltage 저압 --supply 공중 --payment INSTALLMENT
//	go run ./cmd/solarcalc tariffs
package main

import (
	"os"

	"github.com/PSJ84/jssolar-project-portal-sub002/cmd/solarcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
