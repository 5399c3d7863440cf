package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/kepco"
	kepcosvc "github.com/PSJ84/jssolar-project-portal-sub002/internal/service/kepco"
)

var (
	kepcoCapacity float64
	kepcoVoltage  string
	kepcoSupply   string
	kepcoDistance int64
	kepcoPayment  string
)

// kepcoCmd 한전 시설부담금 계산 커맨드
var kepcoCmd = &cobra.Command{
	Use:   "kepco",
	Short: "한전 시설부담금 계산",
	Long: `한전 계통연계 시설부담금(기본 + 거리)과 12개월 분할납부 일정을 계산합니다.

Examples:
    solarcalc kepco --capacity 6 --voltage 저압 --supply 공중
    solarcalc kepco --capacity 6 --voltage 저압 --supply 공중 --distance 573000 --payment INSTALLMENT`,
	RunE: runKepco,
}

// tariffsCmd 단가표 출력 커맨드
var tariffsCmd = &cobra.Command{
	Use:   "tariffs",
	Short: "한전 시설부담금 단가표 출력",
	RunE: func(cmd *cobra.Command, args []string) error {
		tariff, err := kepcosvc.LoadTariff(resolveTariffPath())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), tariff)
	},
}

func init() {
	f := kepcoCmd.Flags()
	f.Float64Var(&kepcoCapacity, "capacity", 0, "설비 용량 (kW)")
	f.StringVar(&kepcoVoltage, "voltage", string(kepco.VoltageLow), "공급 전압 (저압 | 고압 | 특별고압)")
	f.StringVar(&kepcoSupply, "supply", string(kepco.SupplyOverhead), "공급 방식 (공중 | 지중)")
	f.Int64Var(&kepcoDistance, "distance", 0, "거리 시설부담금 (원)")
	f.StringVar(&kepcoPayment, "payment", string(kepco.PaymentLumpSum), "납부 방식 (LUMP_SUM | INSTALLMENT)")

	_ = kepcoCmd.MarkFlagRequired("capacity")
}

func runKepco(cmd *cobra.Command, args []string) error {
	tariff, err := kepcosvc.LoadTariff(resolveTariffPath())
	if err != nil {
		return err
	}

	svc := kepcosvc.NewService(kepcosvc.NewCalculator(tariff), nil)
	outcome, err := svc.Calculate(context.Background(), kepco.ChargeRequest{
		CapacityKW:     kepcoCapacity,
		VoltageType:    kepco.VoltageType(kepcoVoltage),
		SupplyType:     kepco.SupplyType(kepcoSupply),
		DistanceCharge: kepcoDistance,
		PaymentType:    kepco.PaymentType(kepcoPayment),
	})
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), outcome.ChargeResult)
}
