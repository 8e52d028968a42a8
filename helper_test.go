package bikeshare

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nao1215/bikeshare/domain/model"
)

// chicagoCSV mimics the layout of the real datasets, including the unnamed
// index column written by dataframe exports.
const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Subscriber,Male,1981.0
304487,2017-03-06 13:49:38,2017-03-06 13:55:28,350,Christiana Ave & Lawrence Ave,St. Louis Ave & Balmoral Ave,Subscriber,Male,1986.0
45207,2017-01-17 14:53:07,2017-01-17 15:02:59,592,Clark St & Randolph St,Desplaines St & Jackson Blvd,Customer,,
`

// washingtonCSV has no gender or birth year columns and decimal durations.
const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
1330164,2017-05-30 01:02:59,2017-05-30 01:13:37,637.251,17th St & Massachusetts Ave NW,5th & K St NW,Subscriber
`

// writeFile writes content to name inside a fresh temp directory
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// writeGzipFile writes gzip-compressed content to name inside a fresh temp directory
func writeGzipFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return path
}

// at parses a "2006-01-02 15:04:05" timestamp
func at(t *testing.T, value string) time.Time {
	t.Helper()

	ts, err := time.Parse(time.DateTime, value)
	require.NoError(t, err)
	return ts
}

// trip builds a trip starting at start
func trip(t *testing.T, start, from, to string, duration int64) model.Trip {
	t.Helper()

	return model.NewTrip(at(t, start), from, to, duration, "Subscriber")
}

// fullSchema has every optional column
var fullSchema = model.Schema{HasEndTime: true, HasGender: true, HasBirthYear: true}
