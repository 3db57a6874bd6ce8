package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/donaldgifford/aliexpress/pkg/aliexpress"
	"github.com/donaldgifford/aliexpress/pkg/aliexpress/affiliate"
	"github.com/donaldgifford/aliexpress/pkg/aliexpress/dropship"
	"github.com/donaldgifford/aliexpress/pkg/aliexpress/system"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printSignature(w io.Writer, params aliexpress.Params, base, sign string) error {
	tw := newTabWriter(w)
	tw.writef("Method:\t%v\n", params["method"])
	tw.writef("Base string:\t%s\n", base)
	tw.writef("Sign:\t%s\n", sign)
	return tw.finish()
}

func printToken(w io.Writer, t *system.Token) error {
	tw := newTabWriter(w)
	tw.writef("Access token:\t%s\n", t.AccessToken)
	tw.writef("Expires:\t%s\n", formatMillis(t.ExpireTime, t.ExpiresAt()))
	tw.writef("Refresh token:\t%s\n", t.RefreshToken)
	tw.writef("Refresh expires:\t%s\n", formatMillis(t.RefreshTokenValidTime, t.RefreshExpiresAt()))
	if t.UserNick != "" {
		tw.writef("User:\t%s (%s)\n", t.UserNick, t.UserID)
	}
	if t.SellerID != "" {
		tw.writef("Seller:\t%s\n", t.SellerID)
	}
	if t.Account != "" {
		tw.writef("Account:\t%s (%s)\n", t.Account, t.AccountPlatform)
	}
	tw.writef("Request ID:\t%s\n", t.RequestID)
	return tw.finish()
}

func printProductDetail(w io.Writer, p *dropship.Product) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", p.BaseInfo.ProductID)
	tw.writef("Title:\t%s\n", p.BaseInfo.Subject)
	tw.writef("Status:\t%s\n", p.BaseInfo.ProductStatusType)
	tw.writef("Currency:\t%s\n", p.BaseInfo.CurrencyCode)
	tw.writef("Rating:\t%s (%s reviews)\n", p.BaseInfo.AvgEvaluationRating, p.BaseInfo.EvaluationCount)
	tw.writef("Store:\t%s (%d)\n", p.Store.StoreName, p.Store.StoreID)
	if p.Delivery.DeliveryTime > 0 {
		tw.writef("Delivery:\t%d days to %s\n", p.Delivery.DeliveryTime, p.Delivery.ShipToCountry)
	}
	tw.writef("Images:\t%d\n", len(p.Multimedia.Images()))
	for i := range p.Properties {
		tw.writef("%s:\t%s\n", p.Properties[i].AttrName, p.Properties[i].AttrValue)
	}
	if err := tw.finish(); err != nil {
		return err
	}

	if len(p.SKUs) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	tw = newTabWriter(w)
	tw.writef("SKU\tATTRIBUTES\tPRICE\tOFFER\tSTOCK\n")
	for i := range p.SKUs {
		s := &p.SKUs[i]
		values := make([]string, 0, len(s.Properties))
		for j := range s.Properties {
			values = append(values, s.Properties[j].SkuPropertyValue)
		}
		tw.writef("%s\t%s\t%s\t%s\t%d\n",
			s.ID,
			truncate(strings.Join(values, " / "), 40),
			s.SkuPrice,
			s.OfferSalePrice,
			s.AvailableStock(),
		)
	}
	return tw.finish()
}

func printAffiliateProductsTable(w io.Writer, products []affiliate.Product) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTITLE\tPRICE\tCOMMISSION\tVOLUME\n")
	for i := range products {
		p := &products[i]
		tw.writef("%d\t%s\t%s %s\t%s\t%d\n",
			p.ProductID,
			truncate(p.ProductTitle, 40),
			p.TargetSalePrice,
			p.TargetSalePriceCurrency,
			p.CommissionRate,
			p.LatestVolume,
		)
	}
	return tw.finish()
}

func printOrderDetail(w io.Writer, o *dropship.Order) error {
	tw := newTabWriter(w)
	tw.writef("Status:\t%s\n", o.OrderStatus)
	tw.writef("Logistics:\t%s\n", o.LogisticsStatus)
	tw.writef("Created:\t%s\n", o.GmtCreate)
	tw.writef("Amount:\t%s %s\n", o.OrderAmount.Amount, o.OrderAmount.CurrencyCode)
	tw.writef("Store:\t%s\n", o.Store.StoreName)
	for i := range o.Logistics {
		tw.writef("Shipment:\t%s (%s)\n", o.Logistics[i].LogisticsNo, o.Logistics[i].LogisticsService)
	}
	if err := tw.finish(); err != nil {
		return err
	}

	if len(o.ChildOrders) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	tw = newTabWriter(w)
	tw.writef("PRODUCT\tNAME\tQTY\tPRICE\n")
	for i := range o.ChildOrders {
		c := &o.ChildOrders[i]
		tw.writef("%d\t%s\t%d\t%s %s\n",
			c.ProductID,
			truncate(c.ProductName, 40),
			c.ProductCount,
			c.ProductPrice.Amount,
			c.ProductPrice.CurrencyCode,
		)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatMillis(ms int64, t time.Time) string {
	if ms == 0 {
		return "-"
	}
	return t.Format(time.RFC3339)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
