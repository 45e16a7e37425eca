package records

import (
	"context"
	"fmt"
	"io"
	"time"

	"sportello/models"

	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// bookingsRange is the sheet tab and column span rows are appended to.
const bookingsRange = "Bookings!A:J"

// Recorder keeps the operators' records: a spreadsheet row per booking and a
// Drive copy of any uploaded attachment. There is no rollback: an attachment
// that uploads before a failed append simply stays in the folder.
type Recorder interface {
	SaveAttachment(ctx context.Context, filename string, content io.Reader) (string, error)
	AppendBooking(ctx context.Context, rec models.BookingRecord) error
}

// GoogleRecorder is the production implementation backed by the Sheets and
// Drive APIs with a shared service account.
type GoogleRecorder struct {
	sheets   *sheets.Service
	drive    *drive.Service
	sheetID  string
	folderID string
	logger   *zap.Logger
}

func NewGoogleRecorder(ctx context.Context, credentialsFile, sheetID, folderID string, logger *zap.Logger) (*GoogleRecorder, error) {
	if credentialsFile == "" || sheetID == "" {
		return nil, fmt.Errorf("google recorder initialization error: missing credentials file or sheet id")
	}
	sheetsSvc, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("initialize sheets service: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("initialize drive service: %w", err)
	}
	return &GoogleRecorder{
		sheets:   sheetsSvc,
		drive:    driveSvc,
		sheetID:  sheetID,
		folderID: folderID,
		logger:   logger,
	}, nil
}

// SaveAttachment uploads a submitted file into the configured Drive folder and
// returns its view link for the spreadsheet row.
func (g *GoogleRecorder) SaveAttachment(ctx context.Context, filename string, content io.Reader) (string, error) {
	file := &drive.File{Name: filename}
	if g.folderID != "" {
		file.Parents = []string{g.folderID}
	}
	created, err := g.drive.Files.Create(file).
		Media(content).
		Fields("id", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("upload attachment %q: %w", filename, err)
	}
	g.logger.Info("attachment uploaded", zap.String("file", created.Id))
	return created.WebViewLink, nil
}

// AppendBooking appends one row to the bookings sheet.
func (g *GoogleRecorder) AppendBooking(ctx context.Context, rec models.BookingRecord) error {
	row := []interface{}{
		rec.BookingID,
		rec.CreatedAt.Format(time.RFC3339),
		rec.Service,
		rec.Name,
		rec.Email,
		rec.Telephone,
		rec.Date,
		rec.Message,
		rec.Locale,
		rec.AttachmentURL,
	}
	_, err := g.sheets.Spreadsheets.Values.Append(g.sheetID, bookingsRange, &sheets.ValueRange{
		Values: [][]interface{}{row},
	}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append booking %s: %w", rec.BookingID, err)
	}
	return nil
}
