package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/tzneal/utm"
	"github.com/tzneal/utm/internal/config"
)

func (a *app) forwardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forward LATITUDE LONGITUDE",
		Short: "Convert a latitude/longitude to UTM easting/northing.",
		Long: `forward projects a WGS84 latitude and longitude in decimal degrees to a
UTM easting and northing in meters, in the zone implied by the longitude.
Southern hemisphere northings carry the 10000000 m false northing.`,
		Example:           "  utmconv forward 59.805241567229885 11.40618711509996",
		Args:              cobra.ExactArgs(2),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := parseFloat("latitude", args[0])
			if err != nil {
				return err
			}
			lng, err := parseFloat("longitude", args[1])
			if err != nil {
				return err
			}
			if a.cfg.Strict {
				if err := utm.ValidateGeodetic(lat, lng); err != nil {
					a.log.WithError(err).Warn("rejected geodetic input")
					return fmt.Errorf("forward: %w", err)
				}
			}

			c := utm.Forward(lat, lng)
			a.log.WithFields(logrus.Fields{
				"latitude":  lat,
				"longitude": lng,
				"easting":   c.Easting,
				"northing":  c.Northing,
			}).Debug("converted to UTM")

			if a.cfg.Format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), c)
			}
			p := a.cfg.Precision
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.*f %.*f\n", p, c.Easting, p, c.Northing)
			return err
		},
	}
}

func (a *app) inverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inverse EASTING NORTHING ZONE HEMISPHERE",
		Short: "Convert a UTM easting/northing to latitude/longitude.",
		Long: `inverse converts a UTM easting and northing in meters, in the given zone
(1-60) and hemisphere (N, north, S or south), to a WGS84 latitude and
longitude in decimal degrees.`,
		Example:           "  utmconv inverse 391984.4643429378 6464146.921846279 50 S",
		Args:              cobra.ExactArgs(4),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			easting, err := parseFloat("easting", args[0])
			if err != nil {
				return err
			}
			northing, err := parseFloat("northing", args[1])
			if err != nil {
				return err
			}
			// strconv rather than cast: cast reads a leading zero as octal
			zone, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("zone %q: %w", args[2], err)
			}
			h, err := utm.ParseHemisphere(args[3])
			if err != nil {
				return err
			}
			c := utm.Coord{Easting: easting, Northing: northing}
			if a.cfg.Strict {
				if err := utm.ValidateCoord(c, zone, h); err != nil {
					a.log.WithError(err).Warn("rejected UTM input")
					return fmt.Errorf("inverse: %w", err)
				}
			}

			g := utm.Inverse(c.Easting, c.Northing, zone, h)
			a.log.WithFields(logrus.Fields{
				"easting":    c.Easting,
				"northing":   c.Northing,
				"zone":       zone,
				"hemisphere": h,
				"latitude":   g.Latitude,
				"longitude":  g.Longitude,
			}).Debug("converted to geodetic")

			if a.cfg.Format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), g)
			}
			p := a.cfg.Precision + 6
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.*f %.*f\n", p, g.Latitude, p, g.Longitude)
			return err
		},
	}
}

func parseFloat(name, arg string) (float64, error) {
	f, err := cast.ToFloat64E(arg)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, arg, err)
	}
	return f, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	return json.NewEncoder(w).Encode(v)
}
