package notify

import (
	"context"

	"gopkg.in/telebot.v3"
)

// Telegram 通过Telegram机器人发送通知
type Telegram struct {
	bot  *telebot.Bot
	chat telebot.ChatID
}

// NewTelegram 创建Telegram通知渠道，只发送消息不轮询更新
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:   token,
		Offline: true,
	})
	if err != nil {
		return nil, err
	}
	return &Telegram{bot: bot, chat: telebot.ChatID(chatID)}, nil
}

// Name 实现 Notifier
func (t *Telegram) Name() string { return "telegram" }

// Notify 实现 Notifier
func (t *Telegram) Notify(_ context.Context, msg Message) error {
	_, err := t.bot.Send(t.chat, msg.Subject+"\n\n"+msg.Body)
	return err
}
